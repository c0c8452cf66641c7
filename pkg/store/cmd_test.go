package store

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/emekler0729/egg/pkg/store/storedefs"
)

var cmds = []string{"print(1)", "define(x, 2)", "print(x)", "+(x, 3)"}

func testStore(t *testing.T) DBStore {
	t.Helper()
	st := MustTempStore(t)
	for _, cmd := range cmds {
		if _, err := st.AddCmd(cmd); err != nil {
			t.Fatalf("AddCmd(%q) -> error %v", cmd, err)
		}
	}
	return st
}

func TestNextCmdSeq(t *testing.T) {
	st := testStore(t)
	wantSeq := len(cmds) + 1
	seq, err := st.NextCmdSeq()
	if seq != wantSeq || err != nil {
		t.Errorf("NextCmdSeq -> (%v, %v), want (%v, nil)", seq, err, wantSeq)
	}
}

func TestCmd(t *testing.T) {
	st := testStore(t)
	for i, wantCmd := range cmds {
		cmd, err := st.Cmd(i + 1)
		if cmd != wantCmd || err != nil {
			t.Errorf("Cmd(%v) -> (%q, %v), want (%q, nil)", i+1, cmd, err, wantCmd)
		}
	}
	if _, err := st.Cmd(len(cmds) + 1); err != storedefs.ErrNoMatchingCmd {
		t.Errorf("Cmd(out of range) -> error %v, want ErrNoMatchingCmd", err)
	}
}

func TestDelCmd(t *testing.T) {
	st := testStore(t)
	if err := st.DelCmd(1); err != nil {
		t.Errorf("DelCmd(1) -> error %v, want nil", err)
	}
	if _, err := st.Cmd(1); err != storedefs.ErrNoMatchingCmd {
		t.Errorf("Cmd(deleted) -> error %v, want ErrNoMatchingCmd", err)
	}
	// Deleting a command does not affect the sequence numbers of others.
	if cmd, err := st.Cmd(2); cmd != cmds[1] || err != nil {
		t.Errorf("Cmd(2) -> (%q, %v), want (%q, nil)", cmd, err, cmds[1])
	}
}

func TestCmdsWithSeq(t *testing.T) {
	st := testStore(t)
	got, err := st.CmdsWithSeq(2, 4)
	if err != nil {
		t.Fatalf("CmdsWithSeq -> error %v, want nil", err)
	}
	want := []storedefs.Cmd{
		{Text: cmds[1], Seq: 2},
		{Text: cmds[2], Seq: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CmdsWithSeq (-want +got):\n%s", diff)
	}
}

func TestPrevCmd(t *testing.T) {
	st := testStore(t)
	tests := []struct {
		upto    int
		prefix  string
		wantCmd storedefs.Cmd
		wantErr error
	}{
		{4, "", storedefs.Cmd{Text: cmds[2], Seq: 3}, nil},
		{100, "", storedefs.Cmd{Text: cmds[3], Seq: 4}, nil},
		{4, "print", storedefs.Cmd{Text: cmds[2], Seq: 3}, nil},
		{3, "print", storedefs.Cmd{Text: cmds[0], Seq: 1}, nil},
		{1, "", storedefs.Cmd{}, storedefs.ErrNoMatchingCmd},
		{100, "nosuch", storedefs.Cmd{}, storedefs.ErrNoMatchingCmd},
	}
	for _, test := range tests {
		cmd, err := st.PrevCmd(test.upto, test.prefix)
		if cmd != test.wantCmd || err != test.wantErr {
			t.Errorf("PrevCmd(%v, %q) -> (%v, %v), want (%v, %v)",
				test.upto, test.prefix, cmd, err, test.wantCmd, test.wantErr)
		}
	}
}
