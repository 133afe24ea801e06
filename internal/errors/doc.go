// Package errors provides structured, user-facing errors for the htmlify CLI.
//
// Each error has a code (H100, H200, ...) registered with a category,
// message and detail, plus an optional suggestion. Errors wrap their cause
// so errors.Is and errors.As keep working:
//
//	err := errors.New("H200").Wrap(cause).WithSuggestion("Check the YAML syntax")
//	errors.PrintError(err)
package errors
