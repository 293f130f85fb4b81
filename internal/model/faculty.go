package model

import "time"

// Faculty represents a teaching staff member.
type Faculty struct {
	ID           int       `json:"id"`
	DepartmentID int       `json:"department_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// FacultyLoginRequest is the payload for faculty authentication.
type FacultyLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=4,max=128"`
}

// FacultyLoginResponse is returned after successful faculty login.
type FacultyLoginResponse struct {
	Token   string  `json:"token"`
	Faculty Faculty `json:"faculty"`
}

// CreateFacultyRequest is the payload for registering a faculty member.
type CreateFacultyRequest struct {
	DepartmentID int    `json:"department_id" binding:"required"`
	Name         string `json:"name" binding:"required,min=2,max=100"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6,max=128"`
}

// UpdateFacultyRequest is the payload for updating a faculty member.
type UpdateFacultyRequest struct {
	DepartmentID int    `json:"department_id" binding:"required"`
	Name         string `json:"name" binding:"required,min=2,max=100"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"omitempty,min=6,max=128"`
}
