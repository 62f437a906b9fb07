package models

import "time"

// Gym is a gym listing as returned by the upstream API.
type Gym struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
}

// GymReview is one user review of a gym.
type GymReview struct {
	ID        int64     `json:"id"`
	GymID     int64     `json:"gym_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// NewGymReview is the create payload for a review.
type NewGymReview struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ContactMessage is the contact-form payload forwarded upstream.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
