package validation

// Result is the payload returned by the remote validation engine.
// Field names mirror the engine's JSON contract.
type Result struct {
	IsValid     bool         `json:"isValid"`
	Status      string       `json:"status"`
	Diagnostics []Diagnostic `json:"errors"`
	Stats       Stats        `json:"validationStats"`
	Timestamp   string       `json:"timestamp,omitempty"`
}

// Diagnostic is a single finding reported by the engine.
type Diagnostic struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Rule     string `json:"rule,omitempty"`
	Concept  string `json:"concept,omitempty"`
}

// Stats summarizes the engine's rule evaluation counts.
type Stats struct {
	TotalRules   int `json:"totalRules"`
	PassedRules  int `json:"passedRules"`
	FailedRules  int `json:"failedRules"`
	WarningRules int `json:"warningRules"`
}
