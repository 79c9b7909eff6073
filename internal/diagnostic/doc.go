// Package diagnostic provides structured errors, warnings and notes
// produced while checking mapping declarations against the types they
// name.
//
// Each diagnostic carries a stable code, the type pair it concerns and,
// when relevant, the member it points at.
package diagnostic
