package model

import "time"

// Season represents the academic season of a semester.
type Season string

const (
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
	SeasonFall   Season = "Fall"
)

// Semester represents an academic term. Semesters are immutable once
// created; the most recently created one is the current enrollment period.
type Semester struct {
	ID        int       `json:"id"`
	Season    Season    `json:"season"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateSemesterRequest is the payload for opening a new semester.
type CreateSemesterRequest struct {
	Season Season `json:"season" binding:"required,oneof=Spring Summer Fall"`
	Year   int    `json:"year" binding:"required,min=2000,max=2100"`
}
