// Package densemat is a small dense-matrix arithmetic library for float64.
//
// What is inside?
//
//	A pure-Go, deterministic matrix package that covers:
//		• Construction: literal rows, zeros, identity, uniform random (seedable)
//		• Element-wise: Add, Sub, Hadamard (element-wise product), Map
//		• Algebra: matrix product (plain and row-parallel, bit-identical), Transpose
//
// Every operation returns a new matrix; operands are never mutated. Shape
// violations come back as errors matched with errors.Is.
//
// Layout:
//
//	matrix/    — Dense type, constructors, operations, validators, options
//	examples/  — a runnable walkthrough (go run ./examples)
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2}})
//	b, _ := matrix.NewFromRows([][]float64{{2, 1, 5}, {3, 4, 6}})
//	c, _ := matrix.Mul(a, b) // [8, 9, 17]
//
//	go get github.com/katalvlaran/densemat
package densemat
