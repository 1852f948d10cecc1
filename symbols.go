package rpn

// Operator indices into operators. The order matches Operators.
const (
	opAdd = iota
	opSub
	opMul
	opDiv
	opPow
	opFact
)

var operators = [...]string{
	opAdd:  "+",
	opSub:  "-",
	opMul:  "*",
	opDiv:  "/",
	opPow:  "^",
	opFact: "!",
}

// Function indices into functions.
const (
	funcSqrt = iota
	funcLog
	funcLn
	funcSin
	funcCos
	funcTan
	funcCosh
	funcSinh
	funcTanh
	funcAsin
	funcAcos
	funcAtan
	funcArcsin
	funcArccos
	funcArctan
)

var functions = [...]string{
	funcSqrt:   "sqrt",
	funcLog:    "log",
	funcLn:     "ln",
	funcSin:    "sin",
	funcCos:    "cos",
	funcTan:    "tan",
	funcCosh:   "cosh",
	funcSinh:   "sinh",
	funcTanh:   "tanh",
	funcAsin:   "asin",
	funcAcos:   "acos",
	funcAtan:   "atan",
	funcArcsin: "arcsin",
	funcArccos: "arccos",
	funcArctan: "arctan",
}

// Precedence levels. Lower levels bind tighter. Function names sit on the
// tightest level so that the converter always pops them ahead of operators.
const (
	precFunction = 1 + iota
	precFactorial
	precPower
	precProduct
	precSum
)

// whichOperator returns the index of the operator with the given text, or
// -1 if there is no such operator.
func whichOperator(text string) int {
	for i, op := range operators {
		if text == op {
			return i
		}
	}
	return -1
}

// whichFunction returns the index of the function with the given name, or
// -1 if there is no such function. Alias spellings like arcsin have their
// own indices.
func whichFunction(text string) int {
	for i, fn := range functions {
		if text == fn {
			return i
		}
	}
	return -1
}

// precedence returns the precedence level of an operator or function
// token's text. The second result is false if the text names neither.
func precedence(text string) (int, bool) {
	if whichFunction(text) >= 0 {
		return precFunction, true
	}
	switch whichOperator(text) {
	case opFact:
		return precFactorial, true
	case opPow:
		return precPower, true
	case opMul, opDiv:
		return precProduct, true
	case opAdd, opSub:
		return precSum, true
	}
	return 0, false
}

// rightAssociative reports whether an operator groups right to left.
// Exponentiation and factorial do; everything else, including function
// names, groups left to right.
func rightAssociative(text string) bool {
	return text == operators[opPow] || text == operators[opFact]
}
