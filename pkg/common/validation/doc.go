// Package validation provides common validation utilities for operation
// arguments across the streamkit library.
//
// This package offers reusable validation functions that help ensure
// consistent error messages and reduce boilerplate code in combinators
// and constructors.
package validation
