// Package domain defines the core domain types and interfaces.
//
// This package contains concept-oriented files (param.go, vector.go, category.go, magic.go, etc.)
// with shared value types and cross-cutting interfaces. No engine code - just contracts and value helpers.
// Prevents circular imports by keeping interfaces on the consumer side.
package domain
