package domain

import (
	"encoding/json"
	"time"
)

// Urgency ranks how soon a resident needs help.
type Urgency string

const (
	UrgencyLow    Urgency = "LOW"
	UrgencyMedium Urgency = "MEDIUM"
	UrgencyHigh   Urgency = "HIGH"
)

// ServicePost is an offering published by a worker. Only active posts are public.
type ServicePost struct {
	ID          string          `json:"id"`
	WorkerID    string          `json:"workerId"`
	Title       string          `json:"title"`
	Cuisine     *Cuisine        `json:"cuisine,omitempty"`
	Price       int             `json:"price"`
	Area        *string         `json:"area,omitempty"`
	Timing      *string         `json:"timing,omitempty"`
	Description *string         `json:"description,omitempty"`
	TimeSlots   json.RawMessage `json:"timeSlots,omitempty"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// WorkerSummary is the public slice of a worker shown next to a listing.
type WorkerSummary struct {
	Name        string     `json:"name"`
	Block       *string    `json:"block,omitempty"`
	WorkerType  WorkerType `json:"workerType"`
	Rating      float64    `json:"rating"`
	RatingCount int        `json:"ratingCount"`
	Verified    bool       `json:"verified"`
}

// ServiceListing is a public service post joined with its worker.
type ServiceListing struct {
	ServicePost
	Worker WorkerSummary `json:"worker"`
}

// Requirement is a request for help posted by a resident. Only open requirements are public.
type Requirement struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	NeedType  WorkerType `json:"needType"`
	Details   *string    `json:"details,omitempty"`
	Timing    *string    `json:"timing,omitempty"`
	Price     *int       `json:"price,omitempty"`
	Block     *string    `json:"block,omitempty"`
	Flat      *string    `json:"flat,omitempty"`
	Urgency   Urgency    `json:"urgency"`
	Open      bool       `json:"open"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// RequirementListing is a public requirement joined with the poster's display name.
type RequirementListing struct {
	Requirement
	PostedBy string `json:"postedBy"`
}
