package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/flowpad-app/flowpad-backend/internal/api/http"
	apimw "github.com/flowpad-app/flowpad-backend/internal/api/middleware"
	authhttp "github.com/flowpad-app/flowpad-backend/internal/auth/http"
	authmw "github.com/flowpad-app/flowpad-backend/internal/auth/middleware"
	"github.com/flowpad-app/flowpad-backend/internal/auth/repository"
	"github.com/flowpad-app/flowpad-backend/internal/auth/service"
	"github.com/flowpad-app/flowpad-backend/internal/auth/token"
	imageshttp "github.com/flowpad-app/flowpad-backend/internal/images/http"
	imagesrepo "github.com/flowpad-app/flowpad-backend/internal/images/repository"
	projectshttp "github.com/flowpad-app/flowpad-backend/internal/projects/http"
	projectsrepo "github.com/flowpad-app/flowpad-backend/internal/projects/repository"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *sql.DB
	Tokens      *token.Codec
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
	}))
	r.Use(apimw.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	userRepo := repository.NewUserRepository(dep.DB)
	projectRepo := projectsrepo.NewProjectRepository(dep.DB)
	imageRepo := imagesrepo.NewImageRepository(dep.DB)

	authSvc := service.NewAuthService(userRepo, dep.Tokens)
	authHandler := authhttp.New(authSvc)
	projectHandler := projectshttp.New(projectRepo)
	imageHandler := imageshttp.New(imageRepo)

	api := r.Group("/api")

	authHandler.RegisterPublic(api.Group("/auth"))

	protected := api.Group("")
	protected.Use(authmw.RequireUser(authSvc))

	authHandler.RegisterProtected(protected.Group("/auth"))
	projectHandler.Register(protected.Group("/projects"))
	imageHandler.Register(protected)

	return r
}
