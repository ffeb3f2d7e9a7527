package employee

import "context"

// EmployeeRepository reads the roster. The roster is externally owned;
// the engine treats it as a point-in-time snapshot per call.
type EmployeeRepository interface {
	// List returns every employee on the roster.
	List(ctx context.Context) ([]Employee, error)

	// ListByRoles returns active employees whose role group is in roleNames.
	ListByRoles(ctx context.Context, roleNames []string) ([]Employee, error)

	// ListByIDs returns the employees with the given IDs; missing IDs
	// are silently absent from the result.
	ListByIDs(ctx context.Context, ids []string) ([]Employee, error)

	// GetByID returns a single employee or ErrEmployeeNotFound.
	GetByID(ctx context.Context, id string) (Employee, error)
}
