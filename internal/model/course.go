package model

// Course represents a catalog course definition owned by a department.
type Course struct {
	ID           int    `json:"id"`
	DepartmentID int    `json:"department_id"`
	CourseCode   string `json:"course_code"`
	Title        string `json:"title"`
	Credits      int    `json:"credits"`
}

// CreateCourseRequest is the payload for adding a course to the catalog.
type CreateCourseRequest struct {
	DepartmentID int    `json:"department_id" binding:"required"`
	CourseCode   string `json:"course_code" binding:"required,min=2,max=20"`
	Title        string `json:"title" binding:"required,min=2,max=150"`
	Credits      int    `json:"credits" binding:"required,min=1,max=6"`
}

// UpdateCourseRequest is the payload for updating a catalog course.
type UpdateCourseRequest struct {
	DepartmentID int    `json:"department_id" binding:"required"`
	CourseCode   string `json:"course_code" binding:"required,min=2,max=20"`
	Title        string `json:"title" binding:"required,min=2,max=150"`
	Credits      int    `json:"credits" binding:"required,min=1,max=6"`
}
