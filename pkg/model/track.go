package model

import "time"

type Track struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	WebsiteURL string    `json:"websiteUrl"`
	Surface    string    `json:"surface"`
	LiveRCURL  string    `json:"liveRcUrl"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
