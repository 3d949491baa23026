// Package core provides a small, stable facade over filespect's internal
// detection pipeline for external integrations. It deliberately re-exports
// a narrow API surface so third-party tools can depend on a stable import
// path without exposing internal implementation packages.
//
// Example:
//
//	r := core.Classify("setup.py")
//	fmt.Println(r.Category.Label(), r.Confidence)
package core
