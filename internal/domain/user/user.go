package user

import (
	"fmt"
	"time"

	"github.com/vforit/ticktrack/internal/shared/biztime"
)

// User is the account aggregate. The password field always holds the
// one-way hash, never the plaintext.
type User struct {
	id           uint
	username     string
	passwordHash string
	fullname     string
	designation  string
	role         string
	approver     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username, passwordHash, fullname, designation, role string, approver bool) (*User, error) {
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(username) > 80 {
		return nil, fmt.Errorf("username exceeds maximum length of 80 characters")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	return &User{
		username:     username,
		passwordHash: passwordHash,
		fullname:     fullname,
		designation:  designation,
		role:         role,
		approver:     approver,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	username string,
	passwordHash string,
	fullname string,
	designation string,
	role string,
	approver bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}

	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		fullname:     fullname,
		designation:  designation,
		role:         role,
		approver:     approver,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Fullname() string {
	return u.fullname
}

func (u *User) Designation() string {
	return u.designation
}

func (u *User) Role() string {
	return u.role
}

func (u *User) Approver() bool {
	return u.approver
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// Patch carries the optional fields of a partial user update. Nil fields
// leave the current value untouched.
type Patch struct {
	Username     *string
	PasswordHash *string
	Fullname     *string
	Designation  *string
	Role         *string
	Approver     *bool
}

// ApplyPatch merges the present fields of the patch into the user and
// bumps updatedAt when anything changed.
func (u *User) ApplyPatch(p Patch) error {
	changed := false

	if p.Username != nil {
		if len(*p.Username) == 0 {
			return fmt.Errorf("username cannot be empty")
		}
		if len(*p.Username) > 80 {
			return fmt.Errorf("username exceeds maximum length of 80 characters")
		}
		u.username = *p.Username
		changed = true
	}
	if p.PasswordHash != nil {
		if len(*p.PasswordHash) == 0 {
			return fmt.Errorf("password hash cannot be empty")
		}
		u.passwordHash = *p.PasswordHash
		changed = true
	}
	if p.Fullname != nil {
		u.fullname = *p.Fullname
		changed = true
	}
	if p.Designation != nil {
		u.designation = *p.Designation
		changed = true
	}
	if p.Role != nil {
		u.role = *p.Role
		changed = true
	}
	if p.Approver != nil {
		u.approver = *p.Approver
		changed = true
	}

	if changed {
		u.updatedAt = biztime.NowUTC()
	}
	return nil
}
