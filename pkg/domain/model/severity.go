package model

// Severity represents an issue severity level as a closed enumeration.
// Only critical, high and medium contribute to counts and scores; every
// other value the API may return (low, unknown, future additions) maps
// to SeverityOther and is excluded from all tallies.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityOther    Severity = "other"
)

// Score weights for ranking projects
const (
	weightCritical = 10
	weightHigh     = 5
	weightMedium   = 1
)

// ParseSeverity maps a raw severity string to the closed enumeration.
// Unrecognized values, including empty strings, become SeverityOther.
func ParseSeverity(raw string) Severity {
	switch raw {
	case "critical":
		return SeverityCritical
	case "high":
		return SeverityHigh
	case "medium":
		return SeverityMedium
	default:
		return SeverityOther
	}
}

// Counted returns true if the severity contributes to aggregate counts
func (s Severity) Counted() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium:
		return true
	default:
		return false
	}
}

// String returns the string representation
func (s Severity) String() string {
	return string(s)
}
