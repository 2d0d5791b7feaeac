package models

import "github.com/google/uuid"

// CommitteeMember represents a seat on the organizing committee.
//
// The roster is independent of the member directory: Role here is a free-text
// title like "Secretary" and there is no link to a Member record.
type CommitteeMember struct {
	ID    uuid.UUID `json:"id" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`
	Name  string    `json:"name" example:"Rajendranath Das"`
	Role  string    `json:"role" example:"Secretary"`
	Phone string    `json:"phone,omitempty"`
	Photo string    `json:"photo,omitempty"` // Base64 image payload
}
