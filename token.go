package rpn

import "strconv"

// Capacity bounds for the evaluation pipeline. Inputs that exceed a bound
// yield a CapacityError; nothing in the package grows past them.
const (
	// MaxExpression is the maximum length in bytes of an expression string.
	MaxExpression = 1000
	// MaxTokens is the maximum number of tokens in a token sequence, infix
	// or postfix.
	MaxTokens = 1000
	// MaxTokenLen is the maximum length in bytes of a single token's text.
	// The tokenizer keeps the first MaxTokenLen-1 bytes of an overlong
	// number or identifier run and drops the rest.
	MaxTokenLen = 64
	// MaxStackDepth is the capacity of the operator and value stacks used
	// as scratch space during conversion and evaluation.
	MaxStackDepth = 1000
)

// Token is a single lexical element of an expression.
type Token struct {
	// Text is the token's characters.
	Text string
	// Kind classifies the token.
	Kind Kind
	// Pos is the 1-based column of the token's first character in the
	// expression it was scanned from.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// Kind is the class of a token.
type Kind int

const (
	KindNone Kind = iota
	// KindNumber is an integer or decimal number.
	KindNumber
	// KindIdent is a letter run, i.e. a function name.
	KindIdent
	// KindOperator is one of + - * / ^ !.
	KindOperator
	// KindBracket is one of ( ) [ ] { }.
	KindBracket
)

var kindnames = [...]string{"None", "Number", "Ident", "Operator", "Bracket"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindnames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindnames[k]
}

// Operators contains the characters which are considered to be operators.
const Operators = "+-*/^!"

// OpenBrackets and CloseBrackets contain the characters which group
// expressions. The converter treats the three pairs as interchangeable: a
// closing bracket matches whichever opening bracket is nearest on the
// stack, regardless of shape.
const (
	OpenBrackets  = "([{"
	CloseBrackets = ")]}"
)
