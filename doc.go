// Package calcbrain implements a reverse-Polish-notation calculator engine.
//
// An Evaluator holds a stack of operations: operands, named constants, and
// named unary and binary operators. Every push re-evaluates the whole stack
// from the top down, so "3 4 +" yields 4 after the second push and 7 after the
// third. A stack that cannot be reduced, e.g. "5 −", has no result; pushes of
// unknown symbols are ignored. Neither case is an error.
//
// Operators and constants are looked up by name in a Registry, which is fixed
// once constructed and can be shared between evaluators.
//
package calcbrain
