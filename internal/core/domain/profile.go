package domain

import (
	"encoding/json"
	"time"
)

// WorkerType is the kind of household service a worker offers or a resident needs.
type WorkerType string

const (
	WorkerCook WorkerType = "COOK"
	WorkerMaid WorkerType = "MAID"
	WorkerBoth WorkerType = "BOTH"
)

// Cuisine is the regional cooking style of a cook.
type Cuisine string

const (
	CuisineNorth Cuisine = "NORTH"
	CuisineSouth Cuisine = "SOUTH"
	CuisineBoth  Cuisine = "BOTH"
)

// Profile holds the personal details of a user. Phone is unique across all profiles.
type Profile struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Block     *string   `json:"block,omitempty"`
	Flat      *string   `json:"flat,omitempty"`
	Age       *int      `json:"age,omitempty"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WorkerProfile holds the service-provider attributes of a WORKER user.
type WorkerProfile struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	WorkerType      WorkerType      `json:"workerType"`
	Cuisine         *Cuisine        `json:"cuisine,omitempty"`
	ExperienceYears *int            `json:"experienceYears"`
	Charges         int             `json:"charges"`
	LongTermOffer   *string         `json:"longTermOffer,omitempty"`
	Rating          float64         `json:"rating"`
	RatingCount     int             `json:"ratingCount"`
	TimeSlots       json.RawMessage `json:"timeSlots,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
