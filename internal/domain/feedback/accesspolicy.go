package feedback

import (
	vo "vox/internal/domain/feedback/valueobjects"
	"vox/internal/shared/authorization"
)

// Actor is the plain value view of a user the access policy operates
// on. Passing values instead of loading global state keeps every check
// deterministic and unit-testable.
type Actor struct {
	ID         uint
	Role       authorization.Role
	Department string
}

// scopeMatches evaluates the role's scope predicate against a feedback
// item.
func scopeMatches(actor Actor, f *Feedback) bool {
	switch authorization.PermissionsFor(actor.Role).Scope {
	case authorization.ScopeOwn:
		return f.SubmitterID() == actor.ID
	case authorization.ScopeAcademicDepartment:
		return f.Type().IsAcademic() && f.Department() == actor.Department
	case authorization.ScopeNonAcademic:
		return !f.Type().IsAcademic()
	default:
		return false
	}
}

// CanView reports whether the actor may read the feedback item.
// Oversight roles are denied here by their ScopeNone row; they consume
// aggregate analytics instead.
func CanView(actor Actor, f *Feedback) bool {
	return scopeMatches(actor, f)
}

// CanModifyStatus reports whether the actor may transition the item at
// all; the target-status restriction is checked by CanSetStatus.
func CanModifyStatus(actor Actor, f *Feedback) bool {
	perms := authorization.PermissionsFor(actor.Role)
	if !perms.ModifyStatus || !scopeMatches(actor, f) {
		return false
	}
	if perms.AssignedOnly {
		return f.AssigneeID() != nil && *f.AssigneeID() == actor.ID
	}
	return true
}

// CanSetStatus additionally enforces the narrow status subset granted
// to lowest-tier execution roles.
func CanSetStatus(actor Actor, f *Feedback, target vo.FeedbackStatus) bool {
	if !CanModifyStatus(actor, f) {
		return false
	}
	return authorization.StatusAllowedFor(actor.Role, target.String())
}

// CanAssign checks the directed assignment hierarchy: the assignee must
// hold an immediate subordinate role, and for academic items assigner,
// assignee and feedback must share a department.
func CanAssign(actor Actor, f *Feedback, assignee Actor) bool {
	if !scopeMatches(actor, f) {
		return false
	}
	if !authorization.CanAssignToRole(actor.Role, assignee.Role) {
		return false
	}
	if f.Type().IsAcademic() {
		return assignee.Department == actor.Department && f.Department() == actor.Department
	}
	return true
}

// CanAddNote reports whether the actor may attach an internal note.
// Students and oversight roles never can.
func CanAddNote(actor Actor, f *Feedback) bool {
	return authorization.PermissionsFor(actor.Role).AddNote && scopeMatches(actor, f)
}

// CanEscalate reports whether the actor may push the item up its
// escalation chain.
func CanEscalate(actor Actor, f *Feedback) bool {
	return authorization.PermissionsFor(actor.Role).Escalate && scopeMatches(actor, f)
}

// CanEdit reports whether the actor owns the submission and holds edit
// rights. The pending-status and edit-window checks live in the edit
// use case so each failure maps to its own error kind.
func CanEdit(actor Actor, f *Feedback) bool {
	return actor.Role.IsStudent() && f.SubmitterID() == actor.ID
}
