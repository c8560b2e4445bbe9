package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/flowpad-app/flowpad-backend/internal/images/domain"
)

const imageDataPrefix = "data:image/"

// ImageRepository stores node images keyed by (user id, node id).
type ImageRepository struct {
	db *sql.DB
}

func NewImageRepository(db *sql.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

// Save upserts the image for (userID, nodeID), overwriting any previous
// payload for the same node. The payload must declare an image data-URI
// prefix; everything past it is opaque.
func (r *ImageRepository) Save(ctx context.Context, userID int, nodeID, imageData string) (*domain.NodeImage, error) {
	if !strings.HasPrefix(imageData, imageDataPrefix) {
		return nil, domain.ErrInvalidImageData
	}

	img := &domain.NodeImage{UserID: userID, NodeID: nodeID, ImageData: imageData}
	err := r.db.QueryRowContext(ctx, `
INSERT INTO node_images (user_id, node_id, image_data, created_at, updated_at)
VALUES ($1, $2, $3, now(), now())
ON CONFLICT (user_id, node_id)
DO UPDATE SET image_data = EXCLUDED.image_data, updated_at = now()
RETURNING created_at, updated_at
`, userID, nodeID, imageData).Scan(&img.CreatedAt, &img.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("save node image: %w", err)
	}

	return img, nil
}

// Get returns the image stored for (userID, nodeID).
func (r *ImageRepository) Get(ctx context.Context, userID int, nodeID string) (*domain.NodeImage, error) {
	img := &domain.NodeImage{}
	err := r.db.QueryRowContext(ctx, `
SELECT user_id, node_id, image_data, created_at, updated_at
FROM node_images
WHERE user_id = $1 AND node_id = $2
`, userID, nodeID).Scan(&img.UserID, &img.NodeID, &img.ImageData, &img.CreatedAt, &img.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get node image: %w", err)
	}
	return img, nil
}
