package models

import "time"

// Image is metadata for a binary stored in the blob backend. URL and
// PublicID are assigned once at upload time and never change; PublicID is
// the handle used to remove the remote object.
type Image struct {
	ID        string    `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	FolderID  string    `json:"folder_id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	PublicID  string    `json:"public_id"`
	CreatedAt time.Time `json:"created_at"`
}
