// Package queue defines message payloads exchanged over the message broker.
package queue

// ClassReviewedEvent is published when an admin sets a class's review status.
// It carries enough information for downstream consumers to notify the
// instructor without querying the primary database.
type ClassReviewedEvent struct {
	ClassID         uint64 `json:"class_id"`
	Name            string `json:"name"`
	InstructorEmail string `json:"instructor_email"`
	Status          string `json:"status"`
	Feedback        string `json:"feedback,omitempty"`
	ReviewedAt      string `json:"reviewed_at"`
}
