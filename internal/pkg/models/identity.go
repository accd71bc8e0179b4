package models

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the kind of authenticated actor
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Identity represents an authenticated actor produced by a successful login
// or token verification. RegNumber holds the registration number for
// manually registered students and the token code for token logins.
type Identity struct {
	Role      Role     `json:"role"`
	FullName  string   `json:"full_name"`
	RegNumber string   `json:"reg_number"`
	ExamType  ExamType `json:"exam_type"`
}

// Account is a credentialed actor on the authority (admin or registered student)
type Account struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	FullName     string    `json:"full_name" db:"full_name"`
	RegNumber    string    `json:"reg_number" db:"reg_number"`
	ExamType     ExamType  `json:"exam_type" db:"exam_type"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Identity derives the session identity for the account
func (a *Account) Identity() *Identity {
	return &Identity{
		Role:      a.Role,
		FullName:  a.FullName,
		RegNumber: a.RegNumber,
		ExamType:  a.ExamType,
	}
}

// LoginRequest carries a username/password login attempt
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// RegisterStudentRequest carries a manual student registration
type RegisterStudentRequest struct {
	FullName  string   `json:"full_name"`
	RegNumber string   `json:"reg_number"`
	Password  string   `json:"password"`
	ExamType  ExamType `json:"exam_type"`
}

// AuthResponse is returned on a successful credential login
type AuthResponse struct {
	Identity     *Identity `json:"identity"`
	SessionToken string    `json:"session_token"`
	ExpiresAt    int64     `json:"expires_at"`
}

// StudentRecord is a student registered on this device while offline
type StudentRecord struct {
	FullName     string    `json:"full_name"`
	RegNumber    string    `json:"reg_number"`
	PasswordHash string    `json:"password_hash"`
	ExamType     ExamType  `json:"exam_type"`
	CreatedAt    time.Time `json:"created_at"`
}
