package user

import (
	"slices"
	"time"

	"github.com/carolinafmacedo/workflowmanagement/internal/platform/idx"
)

// Permission is a named capability granted through a role.
type Permission string

const (
	PermCreateProject        Permission = "CREATE_PROJECT"
	PermEditAnyProject       Permission = "EDIT_ANY_PROJECT"
	PermDeleteAnyProject     Permission = "DELETE_ANY_PROJECT"
	PermAssociateWorkflow    Permission = "ASSOCIATE_WORKFLOW"
	PermGenerateReports      Permission = "GENERATE_REPORTS"
	PermCreateTask           Permission = "CREATE_TASK"
	PermMoveAnyTask          Permission = "MOVE_ANY_TASK"
	PermAssignAnyResponsible Permission = "ASSIGN_ANY_RESPONSIBLE"
	PermManageWorkflows      Permission = "MANAGE_WORKFLOWS"
	PermManageUsers          Permission = "MANAGE_USERS"
)

// AllPermissions lists every known permission.
var AllPermissions = []Permission{
	PermCreateProject,
	PermEditAnyProject,
	PermDeleteAnyProject,
	PermAssociateWorkflow,
	PermGenerateReports,
	PermCreateTask,
	PermMoveAnyTask,
	PermAssignAnyResponsible,
	PermManageWorkflows,
	PermManageUsers,
}

// IsValid returns true if p is one of the defined constants.
func (p Permission) IsValid() bool {
	return slices.Contains(AllPermissions, p)
}

// String implements fmt.Stringer.
func (p Permission) String() string {
	return string(p)
}

// Well-known role names.
const (
	RoleAdmin     = "ADMIN"
	RoleManager   = "MANAGER"
	RoleDeveloper = "DEVELOPER"
)

// Role groups a set of permissions under a unique name.
type Role struct {
	ID          idx.ID
	Name        string
	Permissions []Permission
	CreatedAt   time.Time
}

// Has reports whether the role grants p.
func (r Role) Has(p Permission) bool {
	return slices.Contains(r.Permissions, p)
}

// DefaultRoles returns the roles seeded into an empty directory.
func DefaultRoles() []Role {
	return []Role{
		{
			Name:        RoleAdmin,
			Permissions: slices.Clone(AllPermissions),
		},
		{
			Name: RoleManager,
			Permissions: []Permission{
				PermCreateProject,
				PermCreateTask,
				PermGenerateReports,
				PermManageWorkflows,
			},
		},
		{
			Name:        RoleDeveloper,
			Permissions: []Permission{PermCreateTask},
		},
	}
}
