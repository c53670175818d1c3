package domain

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleWorker   Role = "worker"
	RoleAdmin    Role = "admin"
)

// Roles lists every role a user can register with.
var Roles = []Role{RoleCustomer, RoleWorker, RoleAdmin}

func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.Valid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleWorker, RoleAdmin:
		return true
	}
	return false
}

const (
	OrderStatusNew        = "new"
	OrderStatusInProgress = "in_progress"
	OrderStatusDone       = "done"
)

type User struct {
	ID           int       `db:"id"`
	Username     string    `db:"username"`
	Role         Role      `db:"role"`
	PasswordHash string    `db:"password_hash"`
	Salt         string    `db:"salt"`
	CreatedAt    time.Time `db:"created_at"`
}

func (u *User) Identity() Identity {
	return Identity{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}

// Identity is the authenticated principal carried by a session.
type Identity struct {
	UserID   int
	Username string
	Role     Role
}

type Order struct {
	ID          int64     `db:"id"`
	Address     string    `db:"address"`
	Description string    `db:"description"`
	Price       int64     `db:"price"`
	Status      string    `db:"status"`
	Assignee    *string   `db:"assignee"`
	Paid        bool      `db:"paid"`
	CreatedAt   time.Time `db:"created_at"`
}
