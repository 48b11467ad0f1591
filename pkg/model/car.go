package model

import "time"

type Car struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Class       string `json:"class"`
	Chassis     string `json:"chassis"`
	Motor       string `json:"motor"`
	ESC         string `json:"esc"`
	Transponder string `json:"transponder"`
	Notes       string `json:"notes"`
	// opaque image blob (data url); never interpreted by analytics
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
