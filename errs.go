package rpn

import "strconv"

// SymbolError indicates a character in the input that cannot begin any
// token. It implements InputError.
type SymbolError struct {
	// Col is the position of the character.
	Col int
	// Char is the character.
	Char byte
}

func (err *SymbolError) Error() string {
	return errpos(err.Col, "unrecognized character "+strconv.QuoteRune(rune(err.Char)))
}

func (err *SymbolError) Pos() int {
	return err.Col
}

// TokenError indicates a token that matches no rule of the converter or
// evaluator, e.g. an identifier that names no function, or a number whose
// text does not parse. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the token's text.
	Token string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "unrecognized token "+strconv.Quote(err.Token))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// BracketError indicates an unmatched bracket in the input. It implements
// InputError.
type BracketError struct {
	// Col is the position of the bracket.
	Col int
	// Left is the unclosed opening bracket, or the empty string if the
	// error is an unmatched closing bracket.
	Left string
	// Right is the unmatched closing bracket, or the empty string if the
	// error is an unclosed opening bracket.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError indicates an input with no tokens in it.
type EmptyExpressionError struct{}

func (err *EmptyExpressionError) Error() string {
	return "empty expression"
}

// CapacityError indicates an input that exceeds one of the pipeline's
// fixed bounds.
type CapacityError struct {
	// What is the bounded quantity: "expression", "tokens", or "stack".
	What string
	// Limit is the bound that was exceeded.
	Limit int
}

func (err *CapacityError) Error() string {
	return err.What + " capacity exceeded (limit " + strconv.Itoa(err.Limit) + ")"
}

// UnderflowError indicates a pop or peek on an empty stack.
type UnderflowError struct{}

func (err *UnderflowError) Error() string {
	return "stack underflow"
}

// DomainError indicates an operand outside an operation's domain, such as
// a division by zero or a negative factorial argument. It implements
// InputError.
type DomainError struct {
	// Col is the position of the operator or function.
	Col int
	// Op is the operator or function applied.
	Op string
	// X is the out-of-domain operand.
	X float64
}

func (err *DomainError) Error() string {
	if err.Op == operators[opDiv] {
		return errpos(err.Col, "division by zero")
	}
	return errpos(err.Col, strconv.FormatFloat(err.X, 'g', -1, 64)+" outside domain of "+err.Op)
}

func (err *DomainError) Pos() int {
	return err.Col
}

// ResultError indicates an expression whose operator and operand counts do
// not balance. It implements InputError.
type ResultError struct {
	// Col is the position of the operator or function that was short of
	// operands, or the position just past the expression if evaluation
	// finished with the wrong number of values.
	Col int
	// Op is the operator or function that was short of operands, or the
	// empty string if evaluation finished with the wrong number of values.
	Op string
	// Count is the number of values available or remaining.
	Count int
}

func (err *ResultError) Error() string {
	if err.Op != "" {
		return errpos(err.Col, "not enough operands for "+err.Op)
	}
	return errpos(err.Col, strconv.Itoa(err.Count)+" values left after evaluation")
}

func (err *ResultError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Errors caused by a
// particular token or character of the input implement InputError.
type InputError interface {
	error
	// Pos returns the 1-based column of the input that caused the error.
	Pos() int
}

var (
	_ InputError = (*SymbolError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*DomainError)(nil)
	_ InputError = (*ResultError)(nil)
)
