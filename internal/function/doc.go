// Package function parses single-expression mathematical functions.
//
// Expressions use the expr language with an explicit symbol table:
//
//   - arithmetic: + - * / and ^ or ** for powers
//   - functions: sin cos tan asin acos atan sinh cosh tanh exp log ln sqrt
//     pow, plus the expr built-ins abs ceil floor round min max
//   - constants: pi
//
// Every other identifier is a free variable. Variables are reported in
// lexicographic order so that callers inferring "the" variable of a
// one-variable function get a stable answer.
//
// # Example
//
//	f, _ := function.Parse("x*(x-2)*(x-1)+1")
//	y, _ := f.At("x", 0.5)
package function
