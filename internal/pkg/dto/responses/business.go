package responses

import "time"

type RecordFailure struct {
	Name  string `json:"name"`
	Hours string `json:"hours"`
	Error string `json:"error"`
}

type ReloadReport struct {
	Source     string          `json:"source"`
	Trigger    string          `json:"trigger"`
	Records    int             `json:"records"`
	Indexed    int             `json:"indexed"`
	Failures   []RecordFailure `json:"failures"`
	Entries    int             `json:"entries"`
	BuiltAt    time.Time       `json:"built_at"`
	DurationMs int64           `json:"duration_ms"`
}

type IndexStatus struct {
	Ready      bool      `json:"ready"`
	Businesses int       `json:"businesses"`
	Entries    int       `json:"entries"`
	BuiltAt    time.Time `json:"built_at,omitempty"`
}
