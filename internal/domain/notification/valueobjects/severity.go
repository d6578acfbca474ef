package valueobjects

import "fmt"

// Severity grades an in-app notification. Warning and error entries are
// additionally gated by the recipient's high-priority alert preference.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

func (s Severity) String() string { return string(s) }

func (s Severity) IsValid() bool {
	switch s {
	case SeverityInfo, SeveritySuccess, SeverityWarning, SeverityError:
		return true
	}
	return false
}

// IsHighPriority reports whether delivery requires the recipient to
// have high-priority alerts enabled.
func (s Severity) IsHighPriority() bool {
	return s == SeverityWarning || s == SeverityError
}

func NewSeverity(value string) (Severity, error) {
	s := Severity(value)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid notification severity: %s", value)
	}
	return s, nil
}
