package domain

import (
	"errors"
	"time"
)

// NodeImage is a base64 data-URI payload a user attached to a flow node.
// The pair (user id, node id) identifies it; re-uploading overwrites.
type NodeImage struct {
	UserID    int       `json:"user_id"`
	NodeID    string    `json:"node_id"`
	ImageData string    `json:"image_data"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var (
	// ErrInvalidImageData is returned when the payload does not carry an
	// image data-URI prefix. The content past the prefix stays opaque.
	ErrInvalidImageData = errors.New("invalid image data format")

	// ErrNotFound is returned when no image exists for the given node.
	ErrNotFound = errors.New("image not found")
)
