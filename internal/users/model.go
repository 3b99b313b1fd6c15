package users

import (
	"slices"
	"time"

	"github.com/GoSim-25-26J-441/seqr-views/internal/projection"
)

// User is an account row. The attr tags name the fields the user
// projection reads.
type User struct {
	ID         int64      `attr:"id"`
	Username   string     `attr:"username"`
	Email      string     `attr:"email"`
	FirstName  string     `attr:"first_name"`
	LastName   string     `attr:"last_name"`
	LastLogin  *time.Time `attr:"last_login"`
	IsStaff    bool       `attr:"is_staff"`
	IsActive   bool       `attr:"is_active"`
	DateJoined time.Time  `attr:"date_joined"`
}

// Access is what one user may see and change.
type Access struct {
	User     *User
	viewable []string
	editable map[string]bool
}

// NewAccess builds the access of a user from the project guids they can
// view and edit. Editable projects are always viewable.
func NewAccess(user *User, viewable, editable []string) *Access {
	a := &Access{User: user, editable: make(map[string]bool, len(editable))}
	for _, g := range editable {
		a.editable[g] = true
	}
	seen := make(map[string]bool, len(viewable)+len(editable))
	for _, g := range slices.Concat(viewable, editable) {
		if g == "" || seen[g] {
			continue
		}
		seen[g] = true
		a.viewable = append(a.viewable, g)
	}
	return a
}

// Staff reports whether the user sees everything.
func (a *Access) Staff() bool {
	return a != nil && a.User != nil && a.User.IsStaff
}

// ViewableProjects returns the guids of the projects the user can view. It
// is nil for staff, who can view every project.
func (a *Access) ViewableProjects() []string {
	if a.Staff() {
		return nil
	}
	if a == nil {
		return []string{}
	}
	return slices.Clone(a.viewable)
}

func (a *Access) CanView(projectGuid string) bool {
	if a.Staff() {
		return true
	}
	return a != nil && slices.Contains(a.viewable, projectGuid)
}

func (a *Access) CanEdit(projectGuid string) bool {
	if a.Staff() {
		return true
	}
	return a != nil && a.editable[projectGuid]
}

// Caller turns the access into the projection's view of the caller. The
// edit check reads the project guid of the record it is given.
func (a *Access) Caller() projection.Caller {
	return projection.Caller{
		Privileged: a.Staff(),
		CanEdit: func(entity projection.Record) bool {
			guid, _ := entity.Field("guid")
			s, ok := guid.(string)
			return ok && a.CanEdit(s)
		},
	}
}
