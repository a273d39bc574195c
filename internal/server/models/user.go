// Package models defines server-side data models persisted in the database.
package models

import (
	"fmt"
	"strings"
	"time"
)

// Role is the closed set of authorization roles embedded in tokens.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole accepts the stored/claimed spelling of a role, case-insensitively.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) String() string { return string(r) }

// User is an account record. PasswordHash always holds a bcrypt hash.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	Nickname     string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Addresses    []Address
}

// ProfileUpdate lists the mutable fields of a User. Empty strings keep the
// current value.
type ProfileUpdate struct {
	Email        string
	Name         string
	Nickname     string
	PasswordHash string
}

// WithProfile returns a copy of u with the update applied. ID, CreatedAt,
// Role and Addresses are carried over; u itself is not modified.
func (u User) WithProfile(p ProfileUpdate, now time.Time) User {
	out := u
	if p.Email != "" {
		out.Email = p.Email
	}
	if p.Name != "" {
		out.Name = p.Name
	}
	if p.Nickname != "" {
		out.Nickname = p.Nickname
	}
	if p.PasswordHash != "" {
		out.PasswordHash = p.PasswordHash
	}
	out.Addresses = append([]Address(nil), u.Addresses...)
	out.UpdatedAt = now
	return out
}

// Address is a shipping address owned by a user.
type Address struct {
	ID        int64
	Name      string
	Recipient string
	Phone     string
	Zipcode   string
	Address1  string
	Address2  string
	IsDefault bool
}
