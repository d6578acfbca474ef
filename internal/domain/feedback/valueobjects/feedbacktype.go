package valueobjects

import "fmt"

type FeedbackType string

const (
	TypeAcademic    FeedbackType = "academic"
	TypeNonAcademic FeedbackType = "non_academic"
)

func (t FeedbackType) String() string {
	return string(t)
}

func (t FeedbackType) IsValid() bool {
	return t == TypeAcademic || t == TypeNonAcademic
}

func (t FeedbackType) IsAcademic() bool {
	return t == TypeAcademic
}

func NewFeedbackType(s string) (FeedbackType, error) {
	t := FeedbackType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid feedback type: %s", s)
	}
	return t, nil
}
