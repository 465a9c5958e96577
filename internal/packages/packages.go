// Package packages implements the taxonomy-package domain: the structural
// pre-check that inspects an uploaded archive's entry listing, classifies
// it into a known packaging convention, and decides whether the package is
// complete enough to submit to the validation engine.
package packages

// Verdict is the immutable outcome of a package pre-check. It is built once
// per classification call and consumed by the display layer; it is never an
// error value, since unreadable or unrecognized input still yields a Verdict.
type Verdict struct {
	IsValid           bool        `json:"is_valid"`
	Message           string      `json:"message"`
	FoundCategories   []string    `json:"found_categories"`
	MissingCategories []string    `json:"missing_categories"`
	Diagnostics       Diagnostics `json:"diagnostics"`
}

// Diagnostics carries supporting detail for the UI's collapsible debug
// panel. It never affects the validity decision.
type Diagnostics struct {
	TotalFiles  int        `json:"total_files"`
	Directories []string   `json:"directories"`
	Convention  Convention `json:"convention"`
}
