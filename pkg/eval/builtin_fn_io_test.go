package eval_test

import (
	"testing"

	. "github.com/emekler0729/egg/pkg/eval/evaltest"
)

func TestPrint(t *testing.T) {
	Test(t,
		That("print(55)").Puts(55).Prints("55\n"),
		// Strings print verbatim, without quotes.
		That(`print("hello")`).Puts("hello").Prints("hello\n"),
		That("print(true)").Prints("true\n"),
		That("print(array(1, 2))").Prints("array(1, 2)\n"),
		// print passes its argument through, so calls compose.
		That("+(print(1), print(2))").Puts(3).Prints("1\n2\n"),
	)
}
