package feedback

import (
	"fmt"
	"time"

	vo "vox/internal/domain/feedback/valueobjects"
)

const (
	maxSubjectLength     = 200
	maxDescriptionLength = 5000
	maxCategoryLength    = 120
)

// Feedback is the aggregate root of the triage engine. Status changes
// go through ChangeStatus/AssignTo so every transition is recorded in
// the immutable history log and the version counter guards concurrent
// writers.
type Feedback struct {
	id                uint
	feedbackType      vo.FeedbackType
	category          string
	subject           string
	description       string
	status            vo.FeedbackStatus
	priority          vo.Priority
	isAnonymous       bool
	department        string
	similarityGroup   string
	resolutionSummary string
	submitterID       uint
	assigneeID        *uint
	assignerID        *uint
	assignedAt        *time.Time
	dueAt             *time.Time
	overdueAlertSent  bool
	version           int
	persistedVersion  int
	createdAt         time.Time
	updatedAt         time.Time

	notes              []*InternalNote
	history            []*StatusHistory
	uncommittedHistory []*StatusHistory
}

func NewFeedback(
	feedbackType vo.FeedbackType,
	category string,
	subject string,
	description string,
	isAnonymous bool,
	department string,
	submitterID uint,
	priority vo.Priority,
	similarityGroup string,
) (*Feedback, error) {
	if !feedbackType.IsValid() {
		return nil, fmt.Errorf("invalid feedback type")
	}
	if err := validateContent(category, subject, description); err != nil {
		return nil, err
	}
	if err := validateDepartment(feedbackType, department); err != nil {
		return nil, err
	}
	if submitterID == 0 {
		return nil, fmt.Errorf("submitter ID is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	now := time.Now()
	f := &Feedback{
		feedbackType:    feedbackType,
		category:        category,
		subject:         subject,
		description:     description,
		status:          vo.StatusPending,
		priority:        priority,
		isAnonymous:     isAnonymous,
		department:      department,
		similarityGroup: similarityGroup,
		submitterID:     submitterID,
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}

	f.recordHistory(vo.StatusPending, submitterID, "Initial submission")

	return f, nil
}

func ReconstructFeedback(
	id uint,
	feedbackType vo.FeedbackType,
	category string,
	subject string,
	description string,
	status vo.FeedbackStatus,
	priority vo.Priority,
	isAnonymous bool,
	department string,
	similarityGroup string,
	resolutionSummary string,
	submitterID uint,
	assigneeID *uint,
	assignerID *uint,
	assignedAt *time.Time,
	dueAt *time.Time,
	overdueAlertSent bool,
	version int,
	createdAt, updatedAt time.Time,
) (*Feedback, error) {
	if id == 0 {
		return nil, fmt.Errorf("feedback ID cannot be zero")
	}
	if !feedbackType.IsValid() {
		return nil, fmt.Errorf("invalid feedback type")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if submitterID == 0 {
		return nil, fmt.Errorf("submitter ID is required")
	}

	return &Feedback{
		id:                id,
		feedbackType:      feedbackType,
		category:          category,
		subject:           subject,
		description:       description,
		status:            status,
		priority:          priority,
		isAnonymous:       isAnonymous,
		department:        department,
		similarityGroup:   similarityGroup,
		resolutionSummary: resolutionSummary,
		submitterID:       submitterID,
		assigneeID:        assigneeID,
		assignerID:        assignerID,
		assignedAt:        assignedAt,
		dueAt:             dueAt,
		overdueAlertSent:  overdueAlertSent,
		version:           version,
		persistedVersion:  version,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (f *Feedback) ID() uint                      { return f.id }
func (f *Feedback) Type() vo.FeedbackType         { return f.feedbackType }
func (f *Feedback) Category() string              { return f.category }
func (f *Feedback) Subject() string               { return f.subject }
func (f *Feedback) Description() string           { return f.description }
func (f *Feedback) Status() vo.FeedbackStatus     { return f.status }
func (f *Feedback) Priority() vo.Priority         { return f.priority }
func (f *Feedback) IsAnonymous() bool             { return f.isAnonymous }
func (f *Feedback) Department() string            { return f.department }
func (f *Feedback) SimilarityGroup() string       { return f.similarityGroup }
func (f *Feedback) ResolutionSummary() string     { return f.resolutionSummary }
func (f *Feedback) SubmitterID() uint             { return f.submitterID }
func (f *Feedback) AssigneeID() *uint             { return f.assigneeID }
func (f *Feedback) AssignerID() *uint             { return f.assignerID }
func (f *Feedback) AssignedAt() *time.Time        { return f.assignedAt }
func (f *Feedback) DueAt() *time.Time             { return f.dueAt }
func (f *Feedback) OverdueAlertSent() bool        { return f.overdueAlertSent }
func (f *Feedback) Version() int                  { return f.version }
func (f *Feedback) PersistedVersion() int         { return f.persistedVersion }
func (f *Feedback) CreatedAt() time.Time          { return f.createdAt }
func (f *Feedback) UpdatedAt() time.Time          { return f.updatedAt }

func (f *Feedback) Notes() []*InternalNote {
	notesCopy := make([]*InternalNote, len(f.notes))
	copy(notesCopy, f.notes)
	return notesCopy
}

func (f *Feedback) History() []*StatusHistory {
	historyCopy := make([]*StatusHistory, len(f.history))
	copy(historyCopy, f.history)
	return historyCopy
}

// UncommittedHistory returns history entries recorded since the last
// persistence. The repository writes them in the same transaction as
// the feedback row.
func (f *Feedback) UncommittedHistory() []*StatusHistory {
	return f.uncommittedHistory
}

// ClearUncommittedHistory moves freshly persisted entries into the
// loaded history log.
func (f *Feedback) ClearUncommittedHistory() {
	f.history = append(f.history, f.uncommittedHistory...)
	f.uncommittedHistory = nil
}

// MarkVersionPersisted records that the current version counter is
// stored. The optimistic update predicate matches on the persisted
// version, so a mutation that touches the counter more than once still
// conflicts with exactly the writers that raced on the same loaded row.
func (f *Feedback) MarkVersionPersisted() {
	f.persistedVersion = f.version
}

func (f *Feedback) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("feedback ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("feedback ID cannot be zero")
	}
	f.id = id
	return nil
}

// SetLoadedRelations attaches child entities fetched by the repository.
func (f *Feedback) SetLoadedRelations(history []*StatusHistory, notes []*InternalNote) {
	f.history = history
	f.notes = notes
}

// ChangeStatus moves the item through the lifecycle. Requesting the
// current status is a no-op and writes no history row. Terminal items
// reject every transition.
func (f *Feedback) ChangeStatus(newStatus vo.FeedbackStatus, actorID uint, note string) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if f.status == newStatus {
		return nil
	}
	if f.status.IsTerminal() {
		return fmt.Errorf("feedback is %s and cannot be modified", f.status)
	}
	if !f.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", f.status, newStatus)
	}

	f.status = newStatus
	f.touch()
	f.recordHistory(newStatus, actorID, note)

	return nil
}

// AssignTo routes the item to an assignee. Any non-terminal status may
// be (re)assigned; the overdue alert flag resets so a new due date gets
// a fresh alert.
func (f *Feedback) AssignTo(assigneeID, assignerID uint, dueAt *time.Time, note string) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	if f.status.IsTerminal() {
		return fmt.Errorf("feedback is %s and cannot be assigned", f.status)
	}

	now := time.Now()
	f.assigneeID = &assigneeID
	f.assignerID = &assignerID
	f.assignedAt = &now
	f.dueAt = dueAt
	f.overdueAlertSent = false

	if f.status != vo.StatusAssigned {
		f.status = vo.StatusAssigned
		f.recordHistory(vo.StatusAssigned, assignerID, note)
	}
	f.touch()

	return nil
}

// ApplyEdit rewrites submitter-editable fields. Only pending items may
// be edited; ownership and the edit window are enforced by the access
// policy before this is called.
func (f *Feedback) ApplyEdit(
	feedbackType vo.FeedbackType,
	category string,
	subject string,
	description string,
	isAnonymous bool,
	department string,
) error {
	if !f.status.IsPending() {
		return fmt.Errorf("feedback cannot be edited after review begins")
	}
	if !feedbackType.IsValid() {
		return fmt.Errorf("invalid feedback type")
	}
	if err := validateContent(category, subject, description); err != nil {
		return err
	}
	if err := validateDepartment(feedbackType, department); err != nil {
		return err
	}

	f.feedbackType = feedbackType
	f.category = category
	f.subject = subject
	f.description = description
	f.isAnonymous = isAnonymous
	f.department = department
	f.touch()

	return nil
}

// Reclassify replaces priority and similarity group after the triage
// pipeline re-runs on an edit.
func (f *Feedback) Reclassify(priority vo.Priority, similarityGroup string) error {
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	f.priority = priority
	f.similarityGroup = similarityGroup
	f.touch()
	return nil
}

// AttachResolutionSummary stores the summary independent of which
// status the update carries.
func (f *Feedback) AttachResolutionSummary(summary string) {
	f.resolutionSummary = summary
	f.touch()
}

// MarkOverdueAlertSent flips the one-shot idempotency guard for the
// overdue sweep.
func (f *Feedback) MarkOverdueAlertSent() {
	f.overdueAlertSent = true
	f.touch()
}

// IsOverdue reports whether the item has a past due date, is still
// open, and no alert has been sent yet.
func (f *Feedback) IsOverdue(now time.Time) bool {
	if f.dueAt == nil || f.status.IsTerminal() {
		return false
	}
	return f.dueAt.Before(now) && !f.overdueAlertSent
}

// WithinEditWindow reports whether the submitter may still edit.
func (f *Feedback) WithinEditWindow(now time.Time, window time.Duration) bool {
	return now.Sub(f.createdAt) <= window
}

func (f *Feedback) recordHistory(status vo.FeedbackStatus, actorID uint, note string) {
	f.uncommittedHistory = append(f.uncommittedHistory, NewStatusHistory(f.id, status, actorID, note))
}

func (f *Feedback) touch() {
	f.updatedAt = time.Now()
	f.version++
}

func validateContent(category, subject, description string) error {
	if len(category) == 0 {
		return fmt.Errorf("category is required")
	}
	if len(category) > maxCategoryLength {
		return fmt.Errorf("category exceeds maximum length of %d characters", maxCategoryLength)
	}
	if len(subject) == 0 {
		return fmt.Errorf("subject is required")
	}
	if len(subject) > maxSubjectLength {
		return fmt.Errorf("subject exceeds maximum length of %d characters", maxSubjectLength)
	}
	if len(description) == 0 {
		return fmt.Errorf("description is required")
	}
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	return nil
}

// validateDepartment enforces the type/department invariant: academic
// feedback always carries a department, non-academic never does.
func validateDepartment(feedbackType vo.FeedbackType, department string) error {
	if feedbackType.IsAcademic() && department == "" {
		return fmt.Errorf("department is required for academic feedback")
	}
	if !feedbackType.IsAcademic() && department != "" {
		return fmt.Errorf("department must be empty for non-academic feedback")
	}
	return nil
}
