package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authdomain "github.com/flowpad-app/flowpad-backend/internal/auth/domain"
	"github.com/flowpad-app/flowpad-backend/internal/auth/middleware"
	"github.com/flowpad-app/flowpad-backend/internal/projects/domain"
)

type stubProjectRepo struct {
	createFn   func(userID int, in domain.CreateInput) (*domain.Project, error)
	listFn     func(userID int) ([]domain.Project, error)
	getFn      func(id, userID int) (*domain.Project, error)
	updateFn   func(id, userID int, in domain.UpdateInput) (*domain.Project, error)
	deleteFn   func(id, userID int) error
	saveFlowFn func(projectID, userID int, blob string) error
	getFlowFn  func(projectID, userID int) (*domain.Flow, error)
}

func (s *stubProjectRepo) Create(_ context.Context, userID int, in domain.CreateInput) (*domain.Project, error) {
	return s.createFn(userID, in)
}

func (s *stubProjectRepo) List(_ context.Context, userID int) ([]domain.Project, error) {
	return s.listFn(userID)
}

func (s *stubProjectRepo) Get(_ context.Context, id, userID int) (*domain.Project, error) {
	return s.getFn(id, userID)
}

func (s *stubProjectRepo) Update(_ context.Context, id, userID int, in domain.UpdateInput) (*domain.Project, error) {
	return s.updateFn(id, userID, in)
}

func (s *stubProjectRepo) Delete(_ context.Context, id, userID int) error {
	return s.deleteFn(id, userID)
}

func (s *stubProjectRepo) SaveFlow(_ context.Context, projectID, userID int, blob string) error {
	return s.saveFlowFn(projectID, userID, blob)
}

func (s *stubProjectRepo) GetFlow(_ context.Context, projectID, userID int) (*domain.Flow, error) {
	return s.getFlowFn(projectID, userID)
}

type stubIdentifier struct {
	user *authdomain.User
}

func (s *stubIdentifier) Identify(context.Context, string) (*authdomain.User, error) {
	return s.user, nil
}

func setupProjectRouter(repo *stubProjectRepo, userID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	auth := &stubIdentifier{user: &authdomain.User{ID: userID, Username: "alice"}}

	group := r.Group("/api/projects")
	group.Use(middleware.RequireUser(auth))
	New(repo).Register(group)

	return r
}

func doProjectJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer tok-1")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestCreateProjectHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		repo := &stubProjectRepo{
			createFn: func(userID int, in domain.CreateInput) (*domain.Project, error) {
				assert.Equal(t, 1, userID)
				assert.Equal(t, "My Flow", in.Name)
				assert.Equal(t, []string{"draft", "shared"}, in.Tags)
				return &domain.Project{ID: 10, Name: in.Name, UserID: userID, Tags: in.Tags}, nil
			},
		}
		r := setupProjectRouter(repo, 1)

		rr := doProjectJSON(t, r, "POST", "/api/projects", gin.H{
			"name": "  My Flow  ",
			"tags": []string{"draft", "shared"},
		})

		require.Equal(t, http.StatusCreated, rr.Code)

		var p domain.Project
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
		assert.Equal(t, 10, p.ID)
	})

	t.Run("missing name", func(t *testing.T) {
		r := setupProjectRouter(&stubProjectRepo{}, 1)

		rr := doProjectJSON(t, r, "POST", "/api/projects", gin.H{"name": "   "})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "project name is required")
	})
}

func TestListProjectsHandler(t *testing.T) {
	repo := &stubProjectRepo{
		listFn: func(userID int) ([]domain.Project, error) {
			assert.Equal(t, 3, userID)
			return []domain.Project{
				{ID: 2, Name: "newer", UserID: 3, Tags: []string{"a"}},
				{ID: 1, Name: "older", UserID: 3, Tags: []string{}},
			}, nil
		},
	}
	r := setupProjectRouter(repo, 3)

	rr := doProjectJSON(t, r, "GET", "/api/projects", nil)

	require.Equal(t, http.StatusOK, rr.Code)

	var out []domain.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "newer", out[0].Name)
}

func TestGetProjectHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		repo := &stubProjectRepo{
			getFn: func(id, userID int) (*domain.Project, error) {
				assert.Equal(t, 5, id)
				return &domain.Project{ID: 5, Name: "p", UserID: userID}, nil
			},
		}
		r := setupProjectRouter(repo, 1)

		rr := doProjectJSON(t, r, "GET", "/api/projects/5", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("not owned", func(t *testing.T) {
		repo := &stubProjectRepo{
			getFn: func(id, userID int) (*domain.Project, error) {
				return nil, domain.ErrNotFound
			},
		}
		r := setupProjectRouter(repo, 1)

		rr := doProjectJSON(t, r, "GET", "/api/projects/5", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "project not found")
	})

	t.Run("bad id", func(t *testing.T) {
		r := setupProjectRouter(&stubProjectRepo{}, 1)

		rr := doProjectJSON(t, r, "GET", "/api/projects/abc", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUpdateProjectHandler(t *testing.T) {
	t.Run("partial update keeps absent fields nil", func(t *testing.T) {
		repo := &stubProjectRepo{
			updateFn: func(id, userID int, in domain.UpdateInput) (*domain.Project, error) {
				require.NotNil(t, in.Name)
				assert.Equal(t, "renamed", *in.Name)
				assert.Nil(t, in.Description)
				assert.Nil(t, in.IsPrivate)
				assert.Nil(t, in.Tags)
				return &domain.Project{ID: id, Name: *in.Name, UserID: userID}, nil
			},
		}
		r := setupProjectRouter(repo, 1)

		rr := doProjectJSON(t, r, "PUT", "/api/projects/4", gin.H{"name": "renamed"})
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("empty tags array clears tags", func(t *testing.T) {
		repo := &stubProjectRepo{
			updateFn: func(id, userID int, in domain.UpdateInput) (*domain.Project, error) {
				require.NotNil(t, in.Tags)
				assert.Empty(t, in.Tags)
				return &domain.Project{ID: id, UserID: userID, Tags: []string{}}, nil
			},
		}
		r := setupProjectRouter(repo, 1)

		rr := doProjectJSON(t, r, "PUT", "/api/projects/4", gin.H{"tags": []string{}})
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestDeleteProjectHandler(t *testing.T) {
	repo := &stubProjectRepo{
		deleteFn: func(id, userID int) error {
			assert.Equal(t, 9, id)
			return nil
		},
	}
	r := setupProjectRouter(repo, 1)

	rr := doProjectJSON(t, r, "DELETE", "/api/projects/9", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Project deleted successfully")
}

func TestFlowHandlers(t *testing.T) {
	t.Run("get saved flow", func(t *testing.T) {
		when := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		repo := &stubProjectRepo{
			getFlowFn: func(projectID, userID int) (*domain.Flow, error) {
				return &domain.Flow{Blob: `{"nodes":[]}`, UpdatedAt: when}, nil
			},
		}
		r := setupProjectRouter(repo, 1)

		rr := doProjectJSON(t, r, "GET", "/api/projects/4/flow", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "last_updated")
	})

	t.Run("flow never saved", func(t *testing.T) {
		repo := &stubProjectRepo{
			getFlowFn: func(projectID, userID int) (*domain.Flow, error) {
				return nil, domain.ErrFlowNotSaved
			},
		}
		r := setupProjectRouter(repo, 1)

		rr := doProjectJSON(t, r, "GET", "/api/projects/4/flow", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "null", rr.Body.String())
	})

	t.Run("save flow", func(t *testing.T) {
		repo := &stubProjectRepo{
			saveFlowFn: func(projectID, userID int, blob string) error {
				assert.Equal(t, 4, projectID)
				assert.Equal(t, `{"nodes":[1]}`, blob)
				return nil
			},
		}
		r := setupProjectRouter(repo, 1)

		rr := doProjectJSON(t, r, "POST", "/api/projects/4/flow", gin.H{"flow": `{"nodes":[1]}`})
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Flow saved successfully")
	})

	t.Run("save flow on foreign project", func(t *testing.T) {
		repo := &stubProjectRepo{
			saveFlowFn: func(projectID, userID int, blob string) error {
				return domain.ErrNotFound
			},
		}
		r := setupProjectRouter(repo, 1)

		rr := doProjectJSON(t, r, "POST", "/api/projects/4/flow", gin.H{"flow": "{}"})
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
