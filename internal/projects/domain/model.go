package domain

import "time"

// Project is a single flow-editor project owned by one user. Tags ride
// along on every read; the flow blob is fetched separately because it can
// be large.
type Project struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsPrivate   bool      `json:"is_private"`
	UserID      int       `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	Tags        []string  `json:"tags"`
}

// Flow is the serialized graph payload of a project. The backend stores
// and returns it verbatim and never inspects its contents.
type Flow struct {
	Blob      string    `json:"flow"`
	UpdatedAt time.Time `json:"last_updated"`
}

// CreateInput carries the fields for a new project.
type CreateInput struct {
	Name        string
	Description *string
	IsPrivate   bool
	Tags        []string
}

// UpdateInput is a partial update: nil fields are left untouched. A
// non-nil Tags replaces the stored set wholesale.
type UpdateInput struct {
	Name        *string
	Description *string
	IsPrivate   *bool
	Tags        []string
}
