// Package rpn implements an infix calculator built on reverse Polish
// notation.
//
// Evaluation is a pipeline of three steps, each usable on its own:
// Tokenize splits an expression string into tokens, ToPostfix reorders the
// tokens into postfix form with the shunting-yard algorithm, and
// EvalPostfix reduces the postfix sequence to a float64 on a value stack.
// EvalString runs all three.
//
// The calculator understands the operators + - * / ^ and postfix !, the
// usual square root, logarithmic, trigonometric, and hyperbolic functions,
// and round, square, or curly brackets for grouping. Every buffer in the
// pipeline has a fixed capacity; inputs that exceed a bound produce a
// CapacityError rather than growing without limit.
package rpn
