package rpn_test

import (
	"errors"
	"math"
	"testing"

	"github.com/hyleus/rpn"
)

func TestEvalString(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"num", "1", 1},
		{"decimal", "2.5", 2.5},
		{"add", "4+5+6", 15},
		{"sub", "4-5-6", -7},
		{"mul", "4*5*6", 120},
		{"div", "4/5", 0.8},
		{"precedence", "3 + 4 * 2", 11},
		{"grouping", "(3+4)*2", 14},
		{"right-assoc", "2^3^2", 512},
		{"pow", "4^0.5", 2},
		{"factorial", "5!", 120},
		{"factorial-zero", "0!", 1},
		{"factorial-one", "1!", 1},
		{"factorial-ten", "10!", 3628800},
		{"factorial-binds", "2+3!", 8},
		{"sqrt", "sqrt(16)", 4},
		{"log", "log(1000)", 3},
		{"ln", "ln(1)", 0},
		{"sin", "sin(0)", 0},
		{"cos", "cos(0)", 1},
		{"tan", "tan(0)", 0},
		{"cosh", "cosh(0)", 1},
		{"sinh", "sinh(0)", 0},
		{"tanh", "tanh(0)", 0},
		{"asin", "asin(1)", math.Pi / 2},
		{"acos", "acos(1)", 0},
		{"atan", "atan(0)", 0},
		{"arcsin-alias", "arcsin(1)", math.Pi / 2},
		{"arccos-alias", "arccos(1)", 0},
		{"arctan-alias", "arctan(0)", 0},
		{"function-term", "2*sqrt(9)+1", 7},
		{"mixed-brackets", "(3+4]*2", 14},
		{"nested", "sqrt(sqrt(16))", 2},
		{"everything", "(3+4)*2 - 5!/60", 12},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := rpn.EvalString(c.src)
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", c.src, err)
			}
			if math.Abs(got-c.want) > 1e-9 {
				t.Errorf("%q evaluated wrong: want %g, got %g", c.src, c.want, got)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		as   func(error) bool
	}{
		{"short-operands", "3 +", asErr[*rpn.ResultError]},
		{"short-operands-mul", "*", asErr[*rpn.ResultError]},
		{"short-factorial", "!", asErr[*rpn.ResultError]},
		{"short-function", "sqrt()", asErr[*rpn.ResultError]},
		{"leftover-values", "3 4", asErr[*rpn.ResultError]},
		{"leftover-after-op", "1 2 + 3", asErr[*rpn.ResultError]},
		// There is no unary minus; "-" here is binary and short an operand.
		{"negated-factorial", "(-3)!", asErr[*rpn.ResultError]},
		{"div-zero", "5/0", asErr[*rpn.DomainError]},
		{"div-zero-grouped", "1/(2-2)", asErr[*rpn.DomainError]},
		{"fractional-factorial", "2.5!", asErr[*rpn.DomainError]},
		{"negative-factorial", "(1-4)!", asErr[*rpn.DomainError]},
		{"sqrt-negative", "sqrt(0-1)", asErr[*rpn.DomainError]},
		{"asin-out-of-range", "asin(2)", asErr[*rpn.DomainError]},
		{"bad-number", "1.2.3", asErr[*rpn.TokenError]},
		{"lone-dot", ".", asErr[*rpn.TokenError]},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := rpn.EvalString(c.src)
			if err == nil {
				t.Fatalf("%q evaluated to %g without error", c.src, r)
			}
			if !c.as(err) {
				t.Errorf("%q gave wrong error kind: %#v", c.src, err)
			}
		})
	}
}

func asErr[E error](err error) bool {
	var target E
	return errors.As(err, &target)
}

func TestEvalPostfixIdempotent(t *testing.T) {
	toks, err := rpn.Tokenize("(3+4)*2")
	if err != nil {
		t.Fatal(err)
	}
	postfix, err := rpn.ToPostfix(toks)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		got, err := rpn.EvalPostfix(postfix)
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if got != 14 {
			t.Errorf("run %d: want 14, got %g", i, got)
		}
	}
}

func TestEvalAfterFailure(t *testing.T) {
	// A failed evaluation leaves no residue that could skew the next one.
	if _, err := rpn.EvalString("3 +"); err == nil {
		t.Fatal("no error for malformed expression")
	}
	got, err := rpn.EvalString("3 + 4")
	if err != nil {
		t.Fatal(err)
	}
	if got != 7 {
		t.Errorf("want 7, got %g", got)
	}
}

func TestEvalPostfixBounds(t *testing.T) {
	var empty *rpn.EmptyExpressionError
	if _, err := rpn.EvalPostfix(nil); !errors.As(err, &empty) {
		t.Errorf("nil input: want EmptyExpressionError, got %v", err)
	}
	long := make([]rpn.Token, rpn.MaxTokens+1)
	for i := range long {
		long[i] = rpn.Token{Text: "1", Kind: rpn.KindNumber, Pos: i + 1}
	}
	var cerr *rpn.CapacityError
	if _, err := rpn.EvalPostfix(long); !errors.As(err, &cerr) {
		t.Errorf("overlong input: want CapacityError, got %v", err)
	}
}

func TestEvalPostfixUnknownToken(t *testing.T) {
	postfix := []rpn.Token{
		{Text: "2", Kind: rpn.KindNumber, Pos: 1},
		{Text: "frob", Kind: rpn.KindIdent, Pos: 3},
	}
	_, err := rpn.EvalPostfix(postfix)
	var terr *rpn.TokenError
	if !errors.As(err, &terr) {
		t.Fatalf("want TokenError, got %v", err)
	}
}
