package authorization

// ScopeKind describes which slice of the feedback stream a role may act on.
type ScopeKind int

const (
	// ScopeNone denies access to individual feedback entirely.
	ScopeNone ScopeKind = iota
	// ScopeOwn limits access to items the user submitted.
	ScopeOwn
	// ScopeAcademicDepartment limits access to academic feedback whose
	// department matches the user's department.
	ScopeAcademicDepartment
	// ScopeNonAcademic limits access to non-academic feedback.
	ScopeNonAcademic
)

// RolePermissions is one row of the permission table.
type RolePermissions struct {
	Scope ScopeKind

	// ModifyStatus grants status transitions within Scope.
	ModifyStatus bool

	// AddNote grants internal-note creation within Scope.
	AddNote bool

	// AssignTargets lists the immediate subordinate roles this role may
	// assign feedback to. Empty means no assignment rights.
	AssignTargets []Role

	// StatusTargets, when non-empty, restricts which statuses the role
	// may transition an item into (lowest-tier execution roles).
	StatusTargets []string

	// AssignedOnly restricts ModifyStatus to items assigned to the user.
	AssignedOnly bool

	// Escalate grants the escalate operation.
	Escalate bool
}

// permissionTable is the single source of truth for role capabilities.
// The original system scattered these rules as per-endpoint membership
// tests; here they are data.
var permissionTable = map[Role]RolePermissions{
	RoleStudent: {
		Scope: ScopeOwn,
	},
	RoleAcademicStaff: {
		Scope:        ScopeAcademicDepartment,
		ModifyStatus: true,
		AddNote:      true,
		Escalate:     true,
	},
	RoleCourseCoordinator: {
		Scope:         ScopeAcademicDepartment,
		ModifyStatus:  true,
		AddNote:       true,
		AssignTargets: []Role{RoleAcademicStaff},
		Escalate:      true,
	},
	RoleDepartmentHead: {
		Scope:         ScopeAcademicDepartment,
		ModifyStatus:  true,
		AddNote:       true,
		AssignTargets: []Role{RoleCourseCoordinator, RoleAcademicStaff},
	},
	RoleDean: {
		Scope:         ScopeAcademicDepartment,
		ModifyStatus:  true,
		AddNote:       true,
		AssignTargets: []Role{RoleDepartmentHead},
	},
	RoleStudentAffairs: {
		Scope:         ScopeNonAcademic,
		ModifyStatus:  true,
		AddNote:       true,
		AssignTargets: []Role{RoleFacilitiesManagement},
		Escalate:      true,
	},
	RoleHeadStudentAffairs: {
		Scope:         ScopeNonAcademic,
		ModifyStatus:  true,
		AddNote:       true,
		AssignTargets: []Role{RoleStudentAffairs},
	},
	RoleFacilitiesManagement: {
		Scope:         ScopeNonAcademic,
		ModifyStatus:  true,
		AddNote:       true,
		AssignTargets: []Role{RoleFacilitiesAccount},
		StatusTargets: []string{"working", "resolved"},
		AssignedOnly:  true,
	},
	RoleFacilitiesAccount: {
		Scope:         ScopeNonAcademic,
		ModifyStatus:  true,
		AddNote:       true,
		StatusTargets: []string{"working", "resolved"},
		AssignedOnly:  true,
	},
	RoleUniversityManagement: {
		Scope: ScopeNone,
	},
	RoleICTAdmin: {
		Scope: ScopeNone,
	},
}

// PermissionsFor returns the table row for a role. Unknown roles get
// the empty row, which denies everything.
func PermissionsFor(role Role) RolePermissions {
	return permissionTable[role]
}

// CanAssignToRole reports whether assigner may hand feedback to the
// assignee role, i.e. the assignee is an immediate subordinate.
func CanAssignToRole(assigner, assignee Role) bool {
	for _, target := range permissionTable[assigner].AssignTargets {
		if target == assignee {
			return true
		}
	}
	return false
}

// StatusAllowedFor reports whether the role may transition an item into
// the given status. An empty StatusTargets list means no restriction.
func StatusAllowedFor(role Role, status string) bool {
	targets := permissionTable[role].StatusTargets
	if len(targets) == 0 {
		return true
	}
	for _, t := range targets {
		if t == status {
			return true
		}
	}
	return false
}
