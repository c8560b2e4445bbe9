package http

import (
	"context"

	"github.com/flowpad-app/flowpad-backend/internal/projects/domain"
)

// ProjectRepository is the persistence surface the handlers use.
type ProjectRepository interface {
	Create(ctx context.Context, userID int, in domain.CreateInput) (*domain.Project, error)
	List(ctx context.Context, userID int) ([]domain.Project, error)
	Get(ctx context.Context, id, userID int) (*domain.Project, error)
	Update(ctx context.Context, id, userID int, in domain.UpdateInput) (*domain.Project, error)
	Delete(ctx context.Context, id, userID int) error
	SaveFlow(ctx context.Context, projectID, userID int, blob string) error
	GetFlow(ctx context.Context, projectID, userID int) (*domain.Flow, error)
}

type Handler struct {
	repo ProjectRepository
}

func New(repo ProjectRepository) *Handler {
	return &Handler{repo: repo}
}

type createReq struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	IsPrivate   bool     `json:"is_private"`
	Tags        []string `json:"tags"`
}

// updateReq distinguishes absent fields (nil) from explicit values; an
// absent tags key leaves the stored set alone, an empty array clears it.
type updateReq struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	IsPrivate   *bool    `json:"is_private"`
	Tags        []string `json:"tags"`
}

type saveFlowReq struct {
	Flow string `json:"flow"`
}
