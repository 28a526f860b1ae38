package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleStudent  Role = "student"
	RoleEmployer Role = "employer"
)

func ToRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleStudent:
		return RoleStudent, true
	case RoleEmployer:
		return RoleEmployer, true
	default:
		return "", false
	}
}

// MediaRef is the identifier + retrieval URL pair returned by the media
// storage service. An empty ID means no asset.
type MediaRef struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

func (m MediaRef) IsZero() bool {
	return m.ID == "" && m.URL == ""
}

type User struct {
	ID           string `gorm:"primaryKey"`
	Username     string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
	Role         Role
	Avatar       MediaRef `gorm:"embedded;embeddedPrefix:avatar_"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewUser(username, email, passwordHash string, role Role) *User {
	return &User{
		ID:           uuid.NewString(),
		Username:     strings.TrimSpace(username),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: passwordHash,
		Role:         role,
	}
}
