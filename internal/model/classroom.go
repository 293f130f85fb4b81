package model

// Classroom represents a physical room where classes or labs are held.
type Classroom struct {
	ID       int    `json:"id"`
	Building string `json:"building"`
	RoomNo   string `json:"room_no"`
}

// CreateClassroomRequest is the payload for registering a classroom.
type CreateClassroomRequest struct {
	Building string `json:"building" binding:"required,min=1,max=50"`
	RoomNo   string `json:"room_no" binding:"required,min=1,max=20"`
}

// UpdateClassroomRequest is the payload for updating a classroom.
type UpdateClassroomRequest struct {
	Building string `json:"building" binding:"required,min=1,max=50"`
	RoomNo   string `json:"room_no" binding:"required,min=1,max=20"`
}
