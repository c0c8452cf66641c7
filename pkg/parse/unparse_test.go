package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var unparseTests = []struct {
	name string
	node Node
	want string
}{
	{"number", &Literal{Value: 7}, "7"},
	{"string", &Literal{Value: "a b"}, `"a b"`},
	{"identifier", &Identifier{Name: "while"}, "while"},
	{"application", &Application{
		Op:   &Identifier{Name: "+"},
		Args: []Node{&Literal{Value: 1}, &Identifier{Name: "x"}},
	}, "+(1, x)"},
	{"application with no arguments", &Application{Op: &Identifier{Name: "f"}}, "f()"},
	{"chained application", &Application{
		Op:   &Application{Op: &Identifier{Name: "f"}, Args: []Node{&Identifier{Name: "x"}}},
		Args: []Node{&Identifier{Name: "y"}},
	}, "f(x)(y)"},
}

func TestUnparse(t *testing.T) {
	for _, test := range unparseTests {
		t.Run(test.name, func(t *testing.T) {
			if got := Unparse(test.node); got != test.want {
				t.Errorf("Unparse(...) = %q, want %q", got, test.want)
			}
		})
	}
}

// Unparsing a tree and parsing the result must produce a structurally
// equal tree.
func TestUnparse_RoundTrip(t *testing.T) {
	for _, test := range unparseTests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Parse(SourceForTest(Unparse(test.node)))
			if err != nil {
				t.Fatalf("Parse(Unparse(...)) returns error %v", err)
			}
			if diff := cmp.Diff(test.node, got, ignoreRanges); diff != "" {
				t.Errorf("Parse(Unparse(...)) returns tree (-want +got):\n%s", diff)
			}
		})
	}
}

// The round trip also holds starting from source text: parsing the
// canonical form of a parsed tree gives back the same tree.
func TestUnparse_RoundTripFromSource(t *testing.T) {
	codes := []string{
		"do(define(plusOne, fun(a, +(a, 1))), print(plusOne(10)))",
		`if(==(x, 0), "zero", "nonzero")`,
		"array(1, 2, 3)",
		"f(x)(y)(z)",
	}
	for _, code := range codes {
		n, err := Parse(SourceForTest(code))
		if err != nil {
			t.Fatalf("Parse(%q) returns error %v", code, err)
		}
		n2, err := Parse(SourceForTest(Unparse(n)))
		if err != nil {
			t.Fatalf("Parse(Unparse) of %q returns error %v", code, err)
		}
		if diff := cmp.Diff(n, n2, ignoreRanges); diff != "" {
			t.Errorf("round trip of %q differs (-want +got):\n%s", code, diff)
		}
	}
}
