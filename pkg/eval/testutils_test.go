package eval_test

import (
	"io"
	"testing"

	"github.com/emekler0729/egg/pkg/eval"
	"github.com/emekler0729/egg/pkg/parse"
)

// newEvalerForTest returns an Evaler that has evaluated the given code,
// failing the test on error.
func newEvalerForTest(t *testing.T, code string) *eval.Evaler {
	t.Helper()
	ev := eval.NewEvaler()
	_, err := ev.Eval(parse.SourceForTest(code), eval.EvalCfg{Out: io.Discard})
	if err != nil {
		t.Fatalf("eval %q: %v", code, err)
	}
	return ev
}
