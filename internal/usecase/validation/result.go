// Package validation checks meeting, isolation and response records before
// they are trusted, and sanitizes free text entered by users.
package validation

import "fmt"

// Result is the outcome of a validation; validators never return errors or panic
type Result struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

func (r *Result) add(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) merge(prefix string, other Result) {
	for _, msg := range other.Errors {
		r.Errors = append(r.Errors, prefix+msg)
	}
}

func (r *Result) finish() Result {
	if r.Errors == nil {
		r.Errors = []string{}
	}
	r.IsValid = len(r.Errors) == 0
	return *r
}

// recoverInto converts a panic raised while validating into a single-entry failure
func recoverInto(out *Result) {
	if rec := recover(); rec != nil {
		*out = Result{IsValid: false, Errors: []string{fmt.Sprintf("Validation error: %v", rec)}}
	}
}
