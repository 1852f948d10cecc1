package rpn_test

import (
	"fmt"
	"strings"

	"github.com/hyleus/rpn"
)

func Example() {
	r, _ := rpn.EvalString("(3+4)*2 - 5!/60")
	fmt.Println(r)
	// Output:
	// 12
}

func ExampleToPostfix() {
	toks, _ := rpn.Tokenize("3 + 4 * 2")
	postfix, _ := rpn.ToPostfix(toks)
	out := make([]string, len(postfix))
	for i, tok := range postfix {
		out[i] = tok.Text
	}
	fmt.Println(strings.Join(out, " "))
	// Output:
	// 3 4 2 * +
}
