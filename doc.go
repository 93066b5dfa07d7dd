// Package mathex implements a small arithmetic expression engine.
//
// An expression like "2 ^ (x + 1)" is lexed into tokens, parsed into a
// binary operator tree, and simplified against a symbol table. Simplification
// is partial evaluation: every closed subtree folds to a number, and subtrees
// containing unbound symbols come back as a smaller residual tree that can be
// simplified again once more symbols are bound.
//
// Numbers are either 64-bit integers or doubles. Arithmetic between two
// integers stays integral except for division and fractional exponents, which
// promote to double.
package mathex
