package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authsvc "github.com/ugchub/ugchub-backend/internal/auth/service"
	"github.com/ugchub/ugchub-backend/internal/events"
	"github.com/ugchub/ugchub-backend/internal/projects/repository"
	projectssvc "github.com/ugchub/ugchub-backend/internal/projects/service"
)

type testApp struct {
	router *gin.Engine
}

func newTestApp(t *testing.T, deps RouterDeps) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if deps.Hub == nil {
		deps.Hub = events.NewHub()
	}
	if deps.Sessions == nil {
		deps.Sessions = authsvc.NewSessionStore(authsvc.DefaultCredentials(), deps.Hub)
	}
	if deps.Projects == nil {
		deps.Projects = projectssvc.NewProjectService(repository.NewProjectRepository(), repository.DefaultCatalog(), deps.Hub)
	}
	if deps.DefaultLang == "" {
		deps.DefaultLang = "es"
	}
	deps.ServiceName = "ugchub-test"
	deps.Version = "test"

	return &testApp{router: BuildRouter(deps)}
}

func (a *testApp) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://localhost:5173")
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

func TestBuildRouter_BrandFlow(t *testing.T) {
	app := newTestApp(t, RouterDeps{AllowedOrigins: []string{"http://localhost:5173"}})

	rr := app.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
	assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Body.String(), `"redis":"disabled"`)
	assert.Contains(t, rr.Body.String(), `"catalog_creators":5`)

	rr = app.do(t, http.MethodGet, "/api/v1/projects", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = app.do(t, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email": "marca@test.com", "password": "marca123", "type": "marca",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = app.do(t, http.MethodPost, "/api/v1/projects", gin.H{
		"name": "Campaña", "description": "UGC", "start_date": "2024-03-01",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var created struct {
		Project struct {
			ID string `json:"id"`
		} `json:"project"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	rr = app.do(t, http.MethodPost, "/api/v1/projects/"+created.Project.ID+"/creators", gin.H{
		"creator_ids": []string{"1", "3"},
	})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = app.do(t, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"total_projects":1`)
	assert.Contains(t, rr.Body.String(), `"assigned_creators":2`)

	rr = app.do(t, http.MethodPost, "/api/v1/auth/logout", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = app.do(t, http.MethodGet, "/api/v1/dashboard", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestBuildRouter_CreatorIsKeptOutOfBrandViews(t *testing.T) {
	app := newTestApp(t, RouterDeps{})

	rr := app.do(t, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email": "creador@test.com", "password": "creador123", "type": "creador",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = app.do(t, http.MethodGet, "/api/v1/dashboard", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = app.do(t, http.MethodGet, "/api/v1/projects?lang=en", nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "You do not have access to this section")
}

func TestBuildRouter_Labels(t *testing.T) {
	app := newTestApp(t, RouterDeps{DefaultLang: "en"})

	rr := app.do(t, http.MethodGet, "/api/v1/labels", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "en", rr.Header().Get("Content-Language"))
	assert.Contains(t, rr.Body.String(), `"status.active":"Active"`)
}

func TestOpenRedis(t *testing.T) {
	_, err := OpenRedis(context.Background(), RedisOptions{})
	assert.Error(t, err)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client, err := OpenRedis(context.Background(), RedisOptions{Addr: mr.Addr()})
	require.NoError(t, err)
	defer client.Close()

	app := newTestApp(t, RouterDeps{Redis: client})
	rr := app.do(t, http.MethodGet, "/healthz", nil)
	assert.Contains(t, rr.Body.String(), `"redis":"up"`)
}

func TestOpenRedis_Unreachable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	_, err = OpenRedis(context.Background(), RedisOptions{Addr: addr, PingTO: 500 * time.Millisecond})
	assert.Error(t, err)
}

func TestSetGinMode(t *testing.T) {
	defer gin.SetMode(gin.TestMode)

	SetGinMode("production")
	assert.Equal(t, gin.ReleaseMode, gin.Mode())
}
