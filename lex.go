package rpn

import "strings"

// Tokenize scans an expression string into a sequence of tokens. The scan
// skips whitespace, reads digit-and-dot runs as numbers, letter runs as
// identifiers, and each operator or bracket character as its own token.
// Number texts are not validated here; a run with several dots tokenizes
// and fails later, when the evaluator parses it. Any other character stops
// the scan with a SymbolError and no tokens.
//
// An expression longer than MaxExpression bytes or producing more than
// MaxTokens tokens yields a CapacityError. A number or identifier run
// longer than MaxTokenLen-1 bytes keeps its first MaxTokenLen-1 bytes;
// the rest are dropped.
func Tokenize(expr string) ([]Token, error) {
	if len(expr) > MaxExpression {
		return nil, &CapacityError{What: "expression", Limit: MaxExpression}
	}
	var toks []Token
	emit := func(tok Token) error {
		if len(toks) >= MaxTokens {
			return &CapacityError{What: "tokens", Limit: MaxTokens}
		}
		toks = append(toks, tok)
		return nil
	}
	i := 0
	for i < len(expr) {
		c := expr[i]
		switch {
		case isspace(c):
			i++
		case isdigit(c) || c == '.':
			start := i
			for i < len(expr) && (isdigit(expr[i]) || expr[i] == '.') {
				i++
			}
			if err := emit(scanned(expr, start, i, KindNumber)); err != nil {
				return nil, err
			}
		case isletter(c):
			start := i
			for i < len(expr) && isletter(expr[i]) {
				i++
			}
			if err := emit(scanned(expr, start, i, KindIdent)); err != nil {
				return nil, err
			}
		case strings.IndexByte(Operators, c) >= 0:
			if err := emit(Token{Text: string(c), Kind: KindOperator, Pos: i + 1}); err != nil {
				return nil, err
			}
			i++
		case strings.IndexByte(OpenBrackets, c) >= 0, strings.IndexByte(CloseBrackets, c) >= 0:
			if err := emit(Token{Text: string(c), Kind: KindBracket, Pos: i + 1}); err != nil {
				return nil, err
			}
			i++
		default:
			return nil, &SymbolError{Col: i + 1, Char: c}
		}
	}
	if len(toks) == 0 {
		return nil, &EmptyExpressionError{}
	}
	return toks, nil
}

// scanned builds a token for the run expr[start:end], truncating overlong
// runs at the token capacity.
func scanned(expr string, start, end int, kind Kind) Token {
	text := expr[start:end]
	if len(text) > MaxTokenLen-1 {
		text = text[:MaxTokenLen-1]
	}
	return Token{Text: text, Kind: kind, Pos: start + 1}
}

func isspace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isdigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isletter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
