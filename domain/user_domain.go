package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister    = "user registered successfully"
	MessageSuccessLogin       = "login successful"
	MessageSuccessGetProfile  = "success get profile"
	MessageSuccessGetUsers    = "success get users"
	MessageSuccessUpdateRole  = "user role updated successfully"
	MessageSuccessDeleteUser  = "user deleted successfully"

	MessageFailedRegister   = "failed to register user"
	MessageFailedLogin      = "failed to login"
	MessageFailedGetProfile = "failed to get profile"
	MessageFailedGetUsers   = "failed to get users"
	MessageFailedUpdateRole = "failed to update user role"
	MessageFailedDeleteUser = "failed to delete user"

	ErrUserNotFound         = errors.New("user not found")
	ErrEmailExists          = errors.New("email already registered")
	ErrCredentialsInvalid   = errors.New("invalid email or password")
	ErrInvalidRole          = errors.New("invalid role")
	ErrCannotChangeOwnRole  = errors.New("cannot change your own role")
)

type (
	RegisterRequest struct {
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"required,min=8"`
		FirstName string `json:"first_name" validate:"required"`
		LastName  string `json:"last_name" validate:"required"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	AuthResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	UserResponse struct {
		ID        string    `json:"id"`
		Email     string    `json:"email"`
		FirstName string    `json:"first_name"`
		LastName  string    `json:"last_name"`
		Role      string    `json:"role"`
		CreatedAt time.Time `json:"created_at"`
	}

	UpdateRoleRequest struct {
		Role string `json:"role" validate:"required,oneof=user contributor admin"`
	}
)
