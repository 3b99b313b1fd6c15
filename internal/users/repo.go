package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// ByUsername loads an active account.
func (r *Repo) ByUsername(ctx context.Context, username string) (*User, error) {
	if username == "" {
		return nil, ErrUnknownUser
	}

	const q = `
select id, username, coalesce(email, ''), coalesce(first_name, ''), coalesce(last_name, ''),
       last_login, is_staff, is_active, date_joined
from auth_user
where username = $1;
`
	var u User
	err := r.db.QueryRow(ctx, q, username).Scan(
		&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName,
		&u.LastLogin, &u.IsStaff, &u.IsActive, &u.DateJoined,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownUser, username)
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if !u.IsActive {
		return nil, fmt.Errorf("%w: %s", ErrInactiveUser, username)
	}
	return &u, nil
}

// ProjectAccess collects the projects the user reaches through the project
// view and edit groups. Staff get an unrestricted Access without a query.
func (r *Repo) ProjectAccess(ctx context.Context, u *User) (*Access, error) {
	if u.IsStaff {
		return NewAccess(u, nil, nil), nil
	}

	const q = `
select p.guid, bool_or(ug.group_id = p.can_edit_group_id) as can_edit
from seqr_project p
join auth_user_groups ug
  on ug.group_id = p.can_edit_group_id or ug.group_id = p.can_view_group_id
where ug.user_id = $1
group by p.guid
order by p.guid;
`
	rows, err := r.db.Query(ctx, q, u.ID)
	if err != nil {
		return nil, fmt.Errorf("load project access: %w", err)
	}
	defer rows.Close()

	var viewable, editable []string
	for rows.Next() {
		var guid string
		var canEdit bool
		if err := rows.Scan(&guid, &canEdit); err != nil {
			return nil, fmt.Errorf("scan project access: %w", err)
		}
		viewable = append(viewable, guid)
		if canEdit {
			editable = append(editable, guid)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate project access: %w", err)
	}

	return NewAccess(u, viewable, editable), nil
}
