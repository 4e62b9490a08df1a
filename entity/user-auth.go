package entity

import (
	"ClassLedger/internal/lib/validate"
	"net/http"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleParent  Role = "parent"
)

type UserAuth struct {
	UserID string `json:"user_id" bson:"user_id" validate:"required"`
	Name   string `json:"name" bson:"name" validate:"omitempty"`
	Role   Role   `json:"role" bson:"role" validate:"required,oneof=admin teacher student parent"`
	Token  string `json:"token" bson:"token" validate:"required,min=1"`
}

func (u *UserAuth) Bind(_ *http.Request) error {
	return validate.Struct(u)
}

// IsAdmin reports whether the caller holds the admin role.
func (u *UserAuth) IsAdmin() bool {
	return u.Role == RoleAdmin
}
