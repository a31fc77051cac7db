package model

import "github.com/golang-jwt/jwt/v5"

// LoginRequest is the admin login body
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued token
type LoginResponse struct {
	Token   string `json:"token"`
	AdminID string `json:"adminId"`
}

// AdminClaims are the JWT claims for dashboard administrators
type AdminClaims struct {
	AdminID string `json:"adminId"`
	jwt.RegisteredClaims
}
