// Package user holds the accounts that log in and hold memberships.
package user

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	vo "stratplan/internal/domain/user/valueobjects"
	"stratplan/internal/shared/biztime"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.@+-]{3,150}$`)

// User is an account. The password hash is produced by a PasswordHasher
// and never leaves the domain except to storage.
type User struct {
	id           uint
	username     string
	firstName    vo.PersonName
	lastName     vo.PersonName
	email        *vo.Email
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

const minPasswordLength = 8

func NewUser(username, firstName, lastName, email, password string, hasher PasswordHasher) (*User, error) {
	username = strings.TrimSpace(username)
	if !usernameRegex.MatchString(username) {
		return nil, fmt.Errorf("username must be 3-150 characters of letters, digits and @.+-_")
	}
	first, err := vo.NewPersonName(firstName)
	if err != nil {
		return nil, err
	}
	last, err := vo.NewPersonName(lastName)
	if err != nil {
		return nil, err
	}

	var addr *vo.Email
	if strings.TrimSpace(email) != "" {
		if addr, err = vo.NewEmail(email); err != nil {
			return nil, err
		}
	}

	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := biztime.NowUTC()
	return &User{
		username:     username,
		firstName:    first,
		lastName:     last,
		email:        addr,
		passwordHash: hash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(id uint, username, firstName, lastName, email, passwordHash string, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	first, _ := vo.NewPersonName(firstName)
	last, _ := vo.NewPersonName(lastName)

	var addr *vo.Email
	if email != "" {
		addr, _ = vo.NewEmail(email)
	}

	return &User{
		id:           id,
		username:     username,
		firstName:    first,
		lastName:     last,
		email:        addr,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// CheckPassword verifies password against the stored hash.
func (u *User) CheckPassword(password string, hasher PasswordHasher) bool {
	if u.passwordHash == "" {
		return false
	}
	return hasher.Verify(u.passwordHash, password)
}

// PlannerName is the name captured on plans: the first name when present,
// otherwise the username.
func (u *User) PlannerName() string {
	if !u.firstName.IsEmpty() {
		return u.firstName.String()
	}
	return u.username
}

// DisplayName is the title-cased full name, falling back to the username.
func (u *User) DisplayName() string {
	full := strings.TrimSpace(u.firstName.String() + " " + u.lastName.String())
	if full == "" {
		return u.username
	}
	name, _ := vo.NewPersonName(full)
	return name.Display()
}

func (u *User) ID() uint             { return u.id }
func (u *User) Username() string     { return u.username }
func (u *User) FirstName() string    { return u.firstName.String() }
func (u *User) LastName() string     { return u.lastName.String() }
func (u *User) Email() string        { return u.email.String() }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

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
