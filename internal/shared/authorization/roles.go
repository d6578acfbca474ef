// Package authorization defines the campus role set and the declarative
// permission table consumed by the feedback access policy. Every role
// check in the system goes through this table; handlers and use cases
// never test role membership directly.
package authorization

import "fmt"

type Role string

const (
	RoleStudent              Role = "student"
	RoleAcademicStaff        Role = "academic_staff"
	RoleCourseCoordinator    Role = "course_coordinator"
	RoleDean                 Role = "dean"
	RoleStudentAffairs       Role = "student_affairs"
	RoleHeadStudentAffairs   Role = "head_student_affairs"
	RoleFacilitiesManagement Role = "facilities_management"
	RoleFacilitiesAccount    Role = "facilities_account"
	RoleDepartmentHead       Role = "department_head"
	RoleUniversityManagement Role = "university_management"
	RoleICTAdmin             Role = "ict_admin"
)

var validRoles = map[Role]bool{
	RoleStudent:              true,
	RoleAcademicStaff:        true,
	RoleCourseCoordinator:    true,
	RoleDean:                 true,
	RoleStudentAffairs:       true,
	RoleHeadStudentAffairs:   true,
	RoleFacilitiesManagement: true,
	RoleFacilitiesAccount:    true,
	RoleDepartmentHead:       true,
	RoleUniversityManagement: true,
	RoleICTAdmin:             true,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func (r Role) IsStudent() bool {
	return r == RoleStudent
}

// IsOversight reports whether the role interacts only through aggregate
// analytics and account administration, never with individual feedback.
func (r Role) IsOversight() bool {
	return r == RoleUniversityManagement || r == RoleICTAdmin
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}
