package feedback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "vox/internal/domain/feedback/valueobjects"
	"vox/internal/shared/authorization"
)

func academicItem(t *testing.T, department string, submitterID uint) *Feedback {
	t.Helper()
	f, err := NewFeedback(vo.TypeAcademic, "grading", "subject", "description",
		false, department, submitterID, vo.PriorityMedium, "")
	require.NoError(t, err)
	return f
}

func nonAcademicItem(t *testing.T, submitterID uint) *Feedback {
	t.Helper()
	f, err := NewFeedback(vo.TypeNonAcademic, "facilities", "subject", "description",
		false, "", submitterID, vo.PriorityMedium, "")
	require.NoError(t, err)
	return f
}

func TestCanView(t *testing.T) {
	academic := academicItem(t, "Computer Science", 10)
	nonAcademic := nonAcademicItem(t, 10)

	tests := []struct {
		name    string
		actor   Actor
		item    *Feedback
		allowed bool
	}{
		{"submitter sees own item", Actor{ID: 10, Role: authorization.RoleStudent}, academic, true},
		{"other student denied", Actor{ID: 11, Role: authorization.RoleStudent}, academic, false},
		{"staff in department", Actor{ID: 20, Role: authorization.RoleAcademicStaff, Department: "Computer Science"}, academic, true},
		{"staff in other department", Actor{ID: 20, Role: authorization.RoleAcademicStaff, Department: "Physics"}, academic, false},
		{"academic staff never sees non-academic", Actor{ID: 20, Role: authorization.RoleAcademicStaff, Department: "Computer Science"}, nonAcademic, false},
		{"student affairs sees non-academic", Actor{ID: 30, Role: authorization.RoleStudentAffairs}, nonAcademic, true},
		{"student affairs never sees academic", Actor{ID: 30, Role: authorization.RoleStudentAffairs}, academic, false},
		{"facilities sees non-academic", Actor{ID: 40, Role: authorization.RoleFacilitiesManagement}, nonAcademic, true},
		{"university management denied individual items", Actor{ID: 50, Role: authorization.RoleUniversityManagement}, academic, false},
		{"ict admin denied individual items", Actor{ID: 51, Role: authorization.RoleICTAdmin}, nonAcademic, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanView(tt.actor, tt.item))
		})
	}
}

func TestCanModifyStatus(t *testing.T) {
	item := nonAcademicItem(t, 10)
	assignee := uint(40)
	due := time.Now().Add(48 * time.Hour)
	require.NoError(t, item.AssignTo(assignee, 30, &due, ""))

	t.Run("student never modifies status", func(t *testing.T) {
		assert.False(t, CanModifyStatus(Actor{ID: 10, Role: authorization.RoleStudent}, item))
	})

	t.Run("student affairs modifies non-academic", func(t *testing.T) {
		assert.True(t, CanModifyStatus(Actor{ID: 30, Role: authorization.RoleStudentAffairs}, item))
	})

	t.Run("facilities assignee may modify", func(t *testing.T) {
		assert.True(t, CanModifyStatus(Actor{ID: 40, Role: authorization.RoleFacilitiesManagement}, item))
	})

	t.Run("facilities non-assignee denied", func(t *testing.T) {
		assert.False(t, CanModifyStatus(Actor{ID: 41, Role: authorization.RoleFacilitiesManagement}, item))
	})
}

func TestCanSetStatus(t *testing.T) {
	item := nonAcademicItem(t, 10)
	due := time.Now().Add(48 * time.Hour)
	require.NoError(t, item.AssignTo(40, 30, &due, ""))

	facilities := Actor{ID: 40, Role: authorization.RoleFacilitiesManagement}

	t.Run("facilities limited to working and resolved", func(t *testing.T) {
		assert.True(t, CanSetStatus(facilities, item, vo.StatusWorking))
		assert.True(t, CanSetStatus(facilities, item, vo.StatusResolved))
		assert.False(t, CanSetStatus(facilities, item, vo.StatusRejected))
		assert.False(t, CanSetStatus(facilities, item, vo.StatusInReview))
	})

	t.Run("student affairs unrestricted in target", func(t *testing.T) {
		affairs := Actor{ID: 30, Role: authorization.RoleStudentAffairs}
		assert.True(t, CanSetStatus(affairs, item, vo.StatusRejected))
	})
}

func TestCanAssign(t *testing.T) {
	academic := academicItem(t, "Computer Science", 10)
	nonAcademic := nonAcademicItem(t, 10)

	tests := []struct {
		name     string
		actor    Actor
		item     *Feedback
		assignee Actor
		allowed  bool
	}{
		{
			name:     "department head assigns coordinator in department",
			actor:    Actor{ID: 20, Role: authorization.RoleDepartmentHead, Department: "Computer Science"},
			item:     academic,
			assignee: Actor{ID: 21, Role: authorization.RoleCourseCoordinator, Department: "Computer Science"},
			allowed:  true,
		},
		{
			name:     "department head assigns academic staff directly",
			actor:    Actor{ID: 20, Role: authorization.RoleDepartmentHead, Department: "Computer Science"},
			item:     academic,
			assignee: Actor{ID: 22, Role: authorization.RoleAcademicStaff, Department: "Computer Science"},
			allowed:  true,
		},
		{
			name:     "cross-department assignment denied",
			actor:    Actor{ID: 20, Role: authorization.RoleDepartmentHead, Department: "Computer Science"},
			item:     academic,
			assignee: Actor{ID: 23, Role: authorization.RoleCourseCoordinator, Department: "Physics"},
			allowed:  false,
		},
		{
			name:     "skipping a tier denied",
			actor:    Actor{ID: 24, Role: authorization.RoleDean, Department: "Computer Science"},
			item:     academic,
			assignee: Actor{ID: 22, Role: authorization.RoleAcademicStaff, Department: "Computer Science"},
			allowed:  false,
		},
		{
			name:     "dean assigns department head",
			actor:    Actor{ID: 24, Role: authorization.RoleDean, Department: "Computer Science"},
			item:     academic,
			assignee: Actor{ID: 20, Role: authorization.RoleDepartmentHead, Department: "Computer Science"},
			allowed:  true,
		},
		{
			name:     "coordinator assigns academic staff",
			actor:    Actor{ID: 21, Role: authorization.RoleCourseCoordinator, Department: "Computer Science"},
			item:     academic,
			assignee: Actor{ID: 22, Role: authorization.RoleAcademicStaff, Department: "Computer Science"},
			allowed:  true,
		},
		{
			name:     "academic staff has no assignment rights",
			actor:    Actor{ID: 22, Role: authorization.RoleAcademicStaff, Department: "Computer Science"},
			item:     academic,
			assignee: Actor{ID: 25, Role: authorization.RoleAcademicStaff, Department: "Computer Science"},
			allowed:  false,
		},
		{
			name:     "student affairs assigns facilities management",
			actor:    Actor{ID: 30, Role: authorization.RoleStudentAffairs},
			item:     nonAcademic,
			assignee: Actor{ID: 40, Role: authorization.RoleFacilitiesManagement},
			allowed:  true,
		},
		{
			name:     "head of student affairs assigns officer",
			actor:    Actor{ID: 31, Role: authorization.RoleHeadStudentAffairs},
			item:     nonAcademic,
			assignee: Actor{ID: 30, Role: authorization.RoleStudentAffairs},
			allowed:  true,
		},
		{
			name:     "facilities management assigns account officer",
			actor:    Actor{ID: 40, Role: authorization.RoleFacilitiesManagement},
			item:     nonAcademic,
			assignee: Actor{ID: 41, Role: authorization.RoleFacilitiesAccount},
			allowed:  true,
		},
		{
			name:     "non-academic chain cannot touch academic item",
			actor:    Actor{ID: 30, Role: authorization.RoleStudentAffairs},
			item:     academic,
			assignee: Actor{ID: 40, Role: authorization.RoleFacilitiesManagement},
			allowed:  false,
		},
		{
			name:     "student cannot assign",
			actor:    Actor{ID: 10, Role: authorization.RoleStudent},
			item:     nonAcademic,
			assignee: Actor{ID: 40, Role: authorization.RoleFacilitiesManagement},
			allowed:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanAssign(tt.actor, tt.item, tt.assignee))
		})
	}
}

func TestCanAddNote(t *testing.T) {
	academic := academicItem(t, "Computer Science", 10)

	assert.True(t, CanAddNote(Actor{ID: 20, Role: authorization.RoleAcademicStaff, Department: "Computer Science"}, academic))
	assert.False(t, CanAddNote(Actor{ID: 10, Role: authorization.RoleStudent}, academic))
	assert.False(t, CanAddNote(Actor{ID: 50, Role: authorization.RoleUniversityManagement}, academic))
}

func TestCanEscalate(t *testing.T) {
	academic := academicItem(t, "Computer Science", 10)
	nonAcademic := nonAcademicItem(t, 10)

	assert.True(t, CanEscalate(Actor{ID: 20, Role: authorization.RoleAcademicStaff, Department: "Computer Science"}, academic))
	assert.True(t, CanEscalate(Actor{ID: 21, Role: authorization.RoleCourseCoordinator, Department: "Computer Science"}, academic))
	assert.True(t, CanEscalate(Actor{ID: 30, Role: authorization.RoleStudentAffairs}, nonAcademic))
	assert.False(t, CanEscalate(Actor{ID: 20, Role: authorization.RoleDepartmentHead, Department: "Computer Science"}, academic))
	assert.False(t, CanEscalate(Actor{ID: 10, Role: authorization.RoleStudent}, academic))
}

func TestCanEdit(t *testing.T) {
	item := academicItem(t, "Computer Science", 10)

	assert.True(t, CanEdit(Actor{ID: 10, Role: authorization.RoleStudent}, item))
	assert.False(t, CanEdit(Actor{ID: 11, Role: authorization.RoleStudent}, item))
	assert.False(t, CanEdit(Actor{ID: 20, Role: authorization.RoleAcademicStaff, Department: "Computer Science"}, item))
}
