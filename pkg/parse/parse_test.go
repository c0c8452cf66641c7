package parse

import (
	"testing"

	"github.com/emekler0729/egg/pkg/diag"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ignoreRanges makes comparisons ignore the source ranges recorded on
// nodes, comparing only the semantically significant structure.
var ignoreRanges = cmpopts.IgnoreTypes(diag.Ranging{})

var parseTests = []struct {
	name string
	code string
	want Node
}{
	{"number", "42", &Literal{Value: 42}},
	{"string", `"hello world"`, &Literal{Value: "hello world"}},
	{"empty string", `""`, &Literal{Value: ""}},
	{"symbol", "foo", &Identifier{Name: "foo"}},
	{"symbol with operator chars", "+", &Identifier{Name: "+"}},
	{"symbol starting with digits", "1st", &Identifier{Name: "1st"}},
	{"application", "f(x)",
		&Application{Op: &Identifier{Name: "f"}, Args: []Node{&Identifier{Name: "x"}}}},
	{"application with no arguments", "f()",
		&Application{Op: &Identifier{Name: "f"}}},
	{"application with multiple arguments", "+(1, 2)",
		&Application{Op: &Identifier{Name: "+"},
			Args: []Node{&Literal{Value: 1}, &Literal{Value: 2}}}},
	{"chained application", "f(x)(y)",
		&Application{
			Op: &Application{Op: &Identifier{Name: "f"},
				Args: []Node{&Identifier{Name: "x"}}},
			Args: []Node{&Identifier{Name: "y"}}}},
	{"nested application", "do(define(x, 10), x)",
		&Application{Op: &Identifier{Name: "do"}, Args: []Node{
			&Application{Op: &Identifier{Name: "define"},
				Args: []Node{&Identifier{Name: "x"}, &Literal{Value: 10}}},
			&Identifier{Name: "x"}}}},
	{"leading and trailing whitespace", "  f(x)\n",
		&Application{Op: &Identifier{Name: "f"}, Args: []Node{&Identifier{Name: "x"}}}},
	{"whitespace inside argument list", "f( x ,\n y )",
		&Application{Op: &Identifier{Name: "f"},
			Args: []Node{&Identifier{Name: "x"}, &Identifier{Name: "y"}}}},
	{"comments", "# a program\nf(x) # trailing",
		&Application{Op: &Identifier{Name: "f"}, Args: []Node{&Identifier{Name: "x"}}}},
	{"comment between tokens", "f(#comment\nx)",
		&Application{Op: &Identifier{Name: "f"}, Args: []Node{&Identifier{Name: "x"}}}},
	{"string with delimiters inside", `"a(b, c) # d"`, &Literal{Value: "a(b, c) # d"}},
}

func TestParse(t *testing.T) {
	for _, test := range parseTests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Parse(SourceForTest(test.code))
			if err != nil {
				t.Fatalf("Parse(%q) returns error %v", test.code, err)
			}
			if diff := cmp.Diff(test.want, got, ignoreRanges); diff != "" {
				t.Errorf("Parse(%q) returns tree (-want +got):\n%s", test.code, diff)
			}
		})
	}
}

var parseErrorTests = []struct {
	name    string
	code    string
	wantMsg string
}{
	{"empty source", "", "Unexpected syntax"},
	{"only whitespace", "  \n\t", "Unexpected syntax"},
	{"only comment", "# nothing here", "Unexpected syntax"},
	{"unterminated string", `"abc`, "Unexpected syntax"},
	{"stray close paren", ")", "Unexpected syntax"},
	{"missing separator", "f(x y)", "Expected ',' or ')'"},
	{"unterminated argument list", "f(x", "Expected ',' or ')'"},
	{"trailing text", "f(x) g", "Unexpected text after program"},
	{"trailing number", "1 2", "Unexpected text after program"},
}

func TestParse_Errors(t *testing.T) {
	for _, test := range parseErrorTests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(SourceForTest(test.code))
			if err == nil {
				t.Fatalf("Parse(%q) returns no error", test.code)
			}
			parseErr, ok := err.(*Error)
			if !ok {
				t.Fatalf("Parse(%q) returns error of type %T, want *Error", test.code, err)
			}
			if parseErr.Message != test.wantMsg {
				t.Errorf("Parse(%q) returns error %q, want %q",
					test.code, parseErr.Message, test.wantMsg)
			}
		})
	}
}

func TestParse_Ranges(t *testing.T) {
	code := "do(x, 42)"
	n, err := Parse(SourceForTest(code))
	if err != nil {
		t.Fatal(err)
	}
	app := n.(*Application)
	if app.Range() != (diag.Ranging{From: 0, To: len(code)}) {
		t.Errorf("application has range %v, want 0-%d", app.Range(), len(code))
	}
	if r := app.Args[0].Range(); code[r.From:r.To] != "x" {
		t.Errorf("first argument has range %v, want range of %q", r, "x")
	}
	if r := app.Args[1].Range(); code[r.From:r.To] != "42" {
		t.Errorf("second argument has range %v, want range of %q", r, "42")
	}
}

func TestParse_ComplexProgram(t *testing.T) {
	code := `do(define(total, 0),
   define(count, 1),
   while(<(count, 11),
         do(define(total, +(total, count)),
            define(count, +(count, 1)))),
   print(total))`
	n, err := Parse(SourceForTest(code))
	if err != nil {
		t.Fatal(err)
	}
	app, ok := n.(*Application)
	if !ok {
		t.Fatalf("got %T, want *Application", n)
	}
	if op := app.Op.(*Identifier).Name; op != "do" {
		t.Errorf("got operator %q, want do", op)
	}
	if len(app.Args) != 4 {
		t.Errorf("got %d arguments, want 4", len(app.Args))
	}
}
