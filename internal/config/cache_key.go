package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// StudentSessionKey returns the cache key for a student's login session.
func (r *CacheKeyStruct) StudentSessionKey(studentID int) string {
	return fmt.Sprintf("login:student:%d", studentID)
}

// OfferingListKey returns the cache key for the published offering list
// of a semester+department pair.
func (r *CacheKeyStruct) OfferingListKey(semesterID, departmentID int) string {
	return fmt.Sprintf("semester:%d:department:%d:offerings", semesterID, departmentID)
}

// SeatUpdateChannel returns the Redis PubSub channel carrying live
// seat-count updates for an offering.
func (r *CacheKeyStruct) SeatUpdateChannel(offeringID string) string {
	return fmt.Sprintf("offering:%s:seats", offeringID)
}

var CacheKey = NewCacheKeyStruct()
