package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/ugchub/ugchub-backend/internal/api/http"
	apimw "github.com/ugchub/ugchub-backend/internal/api/http/middleware"
	authdomain "github.com/ugchub/ugchub-backend/internal/auth/domain"
	authhttp "github.com/ugchub/ugchub-backend/internal/auth/http"
	authmw "github.com/ugchub/ugchub-backend/internal/auth/middleware"
	authsvc "github.com/ugchub/ugchub-backend/internal/auth/service"
	"github.com/ugchub/ugchub-backend/internal/events"
	"github.com/ugchub/ugchub-backend/internal/i18n"
	projectshttp "github.com/ugchub/ugchub-backend/internal/projects/http"
	projectssvc "github.com/ugchub/ugchub-backend/internal/projects/service"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	DefaultLang    string
	Sessions       *authsvc.SessionStore
	Projects       *projectssvc.ProjectService
	Hub            *events.Hub
	Redis          *redis.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(apimw.RequestIDMiddleware())
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))
	r.Use(apimw.Language(i18n.NewResolver(dep.DefaultLang)))

	healthHandler := httpapi.NewHealthHandler(httpapi.HealthDeps{
		ServiceName: dep.ServiceName,
		Version:     dep.Version,
		Redis:       dep.Redis,
		Inventory:   dep.Projects,
		Hub:         dep.Hub,
	})
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.GET("/labels", httpapi.Labels)

	authhttp.New(dep.Sessions).Register(api.Group("/auth"))

	anyone := authmw.RequireRole(dep.Sessions)
	brandOnly := authmw.RequireRole(dep.Sessions, authdomain.RoleBrand)

	projectsHandler := projectshttp.New(dep.Projects, dep.Hub)
	api.GET("/dashboard", anyone, projectsHandler.Dashboard)
	projectsHandler.RegisterCreators(api.Group("/creators", anyone), brandOnly)
	projectsHandler.Register(api.Group("/projects", brandOnly))

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Accept-Language", apimw.HeaderRequestID)
	cfg.ExposeHeaders = []string{apimw.HeaderRequestID, "Content-Language"}
	return cfg
}
