package models

import "time"

// Folder is a node in a per-user tree. ParentID is nil for root folders.
// Siblings may share a name; there is no uniqueness constraint on
// (owner_id, parent_id, name).
type Folder struct {
	ID        string    `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	ParentID  *string   `json:"parent_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
