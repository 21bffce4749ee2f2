package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister = "user registered"
	MessageSuccessLogin    = "login success"
	MessageSuccessGetUser  = "success get user"
	MessageFailedRegister  = "failed to register user"
	MessageFailedLogin     = "failed to login"
	MessageFailedGetUser   = "failed to get user"

	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=3,max=64,alphanum"`
		Email    string `json:"email" validate:"omitempty,email"`
		Password string `json:"password" validate:"required,min=8,max=72"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}

	User struct {
		ID        uint      `json:"id"`
		Username  string    `json:"username"`
		Email     string    `json:"email,omitempty"`
		CreatedAt time.Time `json:"createdAt"`
	}
)
