package model

import "time"

// Student represents a student user.
type Student struct {
	ID           int       `json:"id"`
	StudentNo    string    `json:"student_no"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DepartmentID int       `json:"department_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StudentLoginRequest is the payload for student authentication.
type StudentLoginRequest struct {
	StudentNo string `json:"student_no" binding:"required,min=4,max=20"`
	Password  string `json:"password" binding:"required,min=4,max=128"`
}

// StudentLoginResponse is returned after successful student login.
type StudentLoginResponse struct {
	Token   string  `json:"token"`
	Student Student `json:"student"`
}

// CreateStudentRequest is the payload for creating a new student account.
type CreateStudentRequest struct {
	StudentNo    string `json:"student_no" binding:"required,min=4,max=20"`
	Name         string `json:"name" binding:"required,min=2,max=100"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6,max=128"`
	DepartmentID int    `json:"department_id" binding:"required"`
}

// UpdateStudentRequest is the payload for updating an existing student.
type UpdateStudentRequest struct {
	StudentNo    string `json:"student_no" binding:"required,min=4,max=20"`
	Name         string `json:"name" binding:"required,min=2,max=100"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"omitempty,min=6,max=128"`
	DepartmentID int    `json:"department_id" binding:"required"`
}
