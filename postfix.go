package rpn

import "strings"

// ToPostfix converts an infix token sequence to postfix order using the
// shunting-yard algorithm. Numbers pass straight to the output. Function
// names and opening brackets wait on an operator stack; a closing bracket
// pops the stack to the output until it meets an opening bracket, then
// discards the pair and emits a waiting function name if one is beneath.
// An operator first pops every stacked entry that binds at least as
// tightly, respecting associativity, then stacks itself. Any bracket kind
// closes any other: the converter matches a closing bracket to the nearest
// opening bracket on the stack without comparing shapes, so "(3+4]" is
// accepted.
//
// On any unmatched bracket ToPostfix returns a BracketError; on a token
// that fits no rule, a TokenError. There is no partial output on error.
func ToPostfix(tokens []Token) ([]Token, error) {
	if len(tokens) == 0 {
		return nil, &EmptyExpressionError{}
	}
	if len(tokens) > MaxTokens {
		return nil, &CapacityError{What: "tokens", Limit: MaxTokens}
	}
	out := make([]Token, 0, len(tokens))
	ops := newTokenStack()
	for _, tok := range tokens {
		switch {
		case tok.Kind == KindNumber:
			out = append(out, tok)
		case whichFunction(tok.Text) >= 0:
			if err := ops.push(tok); err != nil {
				return nil, err
			}
		case isOpenBracket(tok):
			if err := ops.push(tok); err != nil {
				return nil, err
			}
		case isCloseBracket(tok):
			var err error
			out, err = closeBracket(out, ops, tok)
			if err != nil {
				return nil, err
			}
		case whichOperator(tok.Text) >= 0:
			var err error
			out, err = stackOperator(out, ops, tok)
			if err != nil {
				return nil, err
			}
		default:
			return nil, &TokenError{Col: tok.Pos, Token: tok.Text}
		}
	}
	// Drain the stack. A leftover opening bracket was never closed.
	for !ops.empty() {
		top, err := ops.pop()
		if err != nil {
			return nil, err
		}
		if isOpenBracket(top) {
			return nil, &BracketError{Col: top.Pos, Left: top.Text}
		}
		out = append(out, top)
	}
	return out, nil
}

// closeBracket pops operators to the output until an opening bracket of
// any kind is found, discards it, and emits the function name beneath it
// if there is one.
func closeBracket(out []Token, ops *tokenStack, tok Token) ([]Token, error) {
	for {
		top, err := ops.pop()
		if err != nil {
			// The stack emptied without an opening bracket.
			return nil, &BracketError{Col: tok.Pos, Right: tok.Text}
		}
		if isOpenBracket(top) {
			break
		}
		out = append(out, top)
	}
	if top, err := ops.peek(); err == nil && whichFunction(top.Text) >= 0 {
		ops.pop()
		out = append(out, top)
	}
	return out, nil
}

// stackOperator pops stacked entries that must apply before tok, then
// stacks tok. A stacked function always applies first. A stacked operator
// applies first when it binds tighter, or binds equally and tok is
// left-associative. Opening brackets stop the popping.
func stackOperator(out []Token, ops *tokenStack, tok Token) ([]Token, error) {
	prec, _ := precedence(tok.Text)
	for !ops.empty() {
		top, err := ops.peek()
		if err != nil {
			return nil, err
		}
		if whichFunction(top.Text) < 0 {
			if whichOperator(top.Text) < 0 {
				break
			}
			topPrec, _ := precedence(top.Text)
			if topPrec > prec || (topPrec == prec && rightAssociative(tok.Text)) {
				break
			}
		}
		ops.pop()
		out = append(out, top)
	}
	if err := ops.push(tok); err != nil {
		return nil, err
	}
	return out, nil
}

func isOpenBracket(tok Token) bool {
	return tok.Kind == KindBracket && strings.Contains(OpenBrackets, tok.Text)
}

func isCloseBracket(tok Token) bool {
	return tok.Kind == KindBracket && strings.Contains(CloseBrackets, tok.Text)
}
