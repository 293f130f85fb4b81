package model

import "time"

// Department represents an academic department.
type Department struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateDepartmentRequest is the payload for creating a department.
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
	Code string `json:"code" binding:"required,min=2,max=10,uppercase"`
}

// UpdateDepartmentRequest is the payload for renaming a department.
type UpdateDepartmentRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
	Code string `json:"code" binding:"required,min=2,max=10,uppercase"`
}
