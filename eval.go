package rpn

import (
	"math"
	"strconv"
)

// EvalPostfix evaluates a postfix token sequence to a single float64.
// Numbers are parsed and pushed on a value stack; operators and functions
// pop their operands from it and push their result. The binary operators
// + - * / ^ pop the right operand first, then the left. The postfix !
// takes one operand, which must be a non-negative integral value. A
// function name takes one operand. Exactly one value must remain when the
// sequence ends; that value is the result.
//
// Too few operands for an operator, or a leftover value at the end, yield
// a ResultError. A division by zero, a factorial of a negative or
// fractional value, or a function argument outside the function's domain
// yield a DomainError.
func EvalPostfix(postfix []Token) (float64, error) {
	if len(postfix) == 0 {
		return 0, &EmptyExpressionError{}
	}
	if len(postfix) > MaxTokens {
		return 0, &CapacityError{What: "tokens", Limit: MaxTokens}
	}
	vals := newValueStack()
	// A failed evaluation must not leave operands behind.
	defer vals.reset()
	for _, tok := range postfix {
		switch {
		case tok.Kind == KindNumber:
			x, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil {
				return 0, &TokenError{Col: tok.Pos, Token: tok.Text}
			}
			if err := vals.push(x); err != nil {
				return 0, err
			}
		case tok.Kind == KindOperator && tok.Text == operators[opFact]:
			if vals.empty() {
				return 0, &ResultError{Col: tok.Pos, Op: tok.Text, Count: vals.len()}
			}
			a, err := vals.pop()
			if err != nil {
				return 0, err
			}
			if a < 0 || a != math.Trunc(a) {
				return 0, &DomainError{Col: tok.Pos, Op: tok.Text, X: a}
			}
			if err := vals.push(factorial(a)); err != nil {
				return 0, err
			}
		case whichOperator(tok.Text) >= 0:
			if vals.len() < 2 {
				return 0, &ResultError{Col: tok.Pos, Op: tok.Text, Count: vals.len()}
			}
			b, err := vals.pop()
			if err != nil {
				return 0, err
			}
			a, err := vals.pop()
			if err != nil {
				return 0, err
			}
			r, err := applyOperator(tok, a, b)
			if err != nil {
				return 0, err
			}
			if err := vals.push(r); err != nil {
				return 0, err
			}
		case whichFunction(tok.Text) >= 0:
			if vals.empty() {
				return 0, &ResultError{Col: tok.Pos, Op: tok.Text, Count: vals.len()}
			}
			a, err := vals.pop()
			if err != nil {
				return 0, err
			}
			r, err := applyFunction(tok, a)
			if err != nil {
				return 0, err
			}
			if err := vals.push(r); err != nil {
				return 0, err
			}
		default:
			return 0, &TokenError{Col: tok.Pos, Token: tok.Text}
		}
	}
	if vals.len() != 1 {
		last := postfix[len(postfix)-1]
		return 0, &ResultError{Col: last.Pos + len(last.Text), Count: vals.len()}
	}
	return vals.pop()
}

// EvalString is a shortcut to tokenize, convert, and evaluate a string
// expression.
func EvalString(expr string) (float64, error) {
	toks, err := Tokenize(expr)
	if err != nil {
		return 0, err
	}
	postfix, err := ToPostfix(toks)
	if err != nil {
		return 0, err
	}
	return EvalPostfix(postfix)
}

// applyOperator computes a binary operation. Division by zero is a
// DomainError, not an infinity. Factorial never reaches here; the
// evaluator applies it as a unary operator.
func applyOperator(tok Token, a, b float64) (float64, error) {
	switch whichOperator(tok.Text) {
	case opAdd:
		return a + b, nil
	case opSub:
		return a - b, nil
	case opMul:
		return a * b, nil
	case opDiv:
		if b == 0 {
			return 0, &DomainError{Col: tok.Pos, Op: tok.Text, X: b}
		}
		return a / b, nil
	case opPow:
		return math.Pow(a, b), nil
	}
	return 0, &TokenError{Col: tok.Pos, Token: tok.Text}
}

// applyFunction computes a function of one variable. An argument outside
// the function's domain, e.g. sqrt(-1), is a DomainError.
func applyFunction(tok Token, x float64) (float64, error) {
	var r float64
	switch whichFunction(tok.Text) {
	case funcSqrt:
		r = math.Sqrt(x)
	case funcLog:
		r = math.Log10(x)
	case funcLn:
		r = math.Log(x)
	case funcSin:
		r = math.Sin(x)
	case funcCos:
		r = math.Cos(x)
	case funcTan:
		r = math.Tan(x)
	case funcCosh:
		r = math.Cosh(x)
	case funcSinh:
		r = math.Sinh(x)
	case funcTanh:
		r = math.Tanh(x)
	case funcAsin, funcArcsin:
		r = math.Asin(x)
	case funcAcos, funcArccos:
		r = math.Acos(x)
	case funcAtan, funcArctan:
		r = math.Atan(x)
	default:
		return 0, &TokenError{Col: tok.Pos, Token: tok.Text}
	}
	if math.IsNaN(r) && !math.IsNaN(x) {
		return 0, &DomainError{Col: tok.Pos, Op: tok.Text, X: x}
	}
	return r, nil
}

// factorial computes n! iteratively, with 0! = 1! = 1. n must be a
// non-negative integral value; the evaluator checks before calling.
func factorial(n float64) float64 {
	r := 1.0
	for k := 2.0; k <= n; k++ {
		r *= k
	}
	return r
}
