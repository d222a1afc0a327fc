// Package models contains data models for the course platform.
package models

import "time"

// Role is a coarse permission group carried in the user record and in
// issued tokens.
type Role string

const (
	RoleUser   Role = "USER"
	RoleAdmin  Role = "ADMIN"
	RoleAuthor Role = "AUTHOR"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleAuthor:
		return true
	}
	return false
}

// MaxRoles is the upper bound on roles a single account may hold.
const MaxRoles = 3

// User represents a platform account. PasswordHash and Salt never leave
// the repository layer in API responses.
type User struct {
	ID             string    `json:"id" gorm:"type:uuid;primaryKey"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	Name           string    `json:"name"`
	PasswordHash   string    `json:"-" gorm:"column:password_hash;not null"`
	Salt           string    `json:"-" gorm:"not null"`
	Roles          []Role    `json:"roles" gorm:"serializer:json"`
	Courses        []string  `json:"courses,omitempty" gorm:"serializer:json"`
	AllowedCourses []string  `json:"allowed_courses,omitempty" gorm:"column:allowed_courses;serializer:json"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}
