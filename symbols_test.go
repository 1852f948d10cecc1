package rpn

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestWhichOperator(t *testing.T) {
	for i, op := range operators {
		assert.Equal(t, i, whichOperator(op))
	}
	assert.Equal(t, -1, whichOperator("("))
	assert.Equal(t, -1, whichOperator("sqrt"))
	assert.Equal(t, -1, whichOperator(""))
	assert.Equal(t, -1, whichOperator("**"))
}

func TestWhichFunction(t *testing.T) {
	for i, fn := range functions {
		assert.Equal(t, i, whichFunction(fn))
	}
	assert.Equal(t, -1, whichFunction("+"))
	assert.Equal(t, -1, whichFunction("exp"))
	assert.Equal(t, -1, whichFunction(""))
	// operator and function sets are disjoint
	for _, op := range operators {
		assert.Equal(t, -1, whichFunction(op))
	}
	for _, fn := range functions {
		assert.Equal(t, -1, whichOperator(fn))
	}
}

func TestPrecedence(t *testing.T) {
	level := func(text string) int {
		p, ok := precedence(text)
		assert.True(t, ok)
		return p
	}
	// Lower level binds tighter: functions, then !, ^, * /, + -.
	assert.True(t, level("sqrt") < level("!"))
	assert.True(t, level("!") < level("^"))
	assert.True(t, level("^") < level("*"))
	assert.Equal(t, level("*"), level("/"))
	assert.True(t, level("*") < level("+"))
	assert.Equal(t, level("+"), level("-"))
	// Every function shares the tightest level.
	for _, fn := range functions {
		assert.Equal(t, precFunction, level(fn))
	}
	// Brackets and unknown names have no precedence.
	for _, text := range []string{"(", ")", "[", "{", "x", "exp", ""} {
		_, ok := precedence(text)
		assert.False(t, ok)
	}
}

func TestRightAssociative(t *testing.T) {
	assert.True(t, rightAssociative("^"))
	assert.True(t, rightAssociative("!"))
	for _, text := range []string{"+", "-", "*", "/", "sqrt", "(", ""} {
		assert.False(t, rightAssociative(text))
	}
}
