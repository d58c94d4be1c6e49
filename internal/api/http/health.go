package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/ugchub/ugchub-backend/internal/projects/domain"
)

const (
	statusHealthy  = "healthy"
	statusDegraded = "degraded"
)

// Inventory is the part of the project service the health check reads.
type Inventory interface {
	Stats() domain.Stats
	CatalogSize() int
}

// SubscriberCounter reports how many listeners the event hub has.
type SubscriberCounter interface {
	Len() int
}

type HealthResponse struct {
	Status           string    `json:"status"`
	Timestamp        time.Time `json:"timestamp"`
	Service          string    `json:"service"`
	Version          string    `json:"version"`
	Redis            string    `json:"redis"`
	Projects         int       `json:"projects"`
	CatalogCreators  int       `json:"catalog_creators"`
	EventSubscribers int       `json:"event_subscribers"`
}

// HealthDeps wires the health endpoint. Redis, Inventory and Hub are
// optional; missing parts report zero or "disabled".
type HealthDeps struct {
	ServiceName string
	Version     string
	Redis       *redis.Client
	Inventory   Inventory
	Hub         SubscriberCounter
}

type HealthHandler struct {
	dep HealthDeps
}

func NewHealthHandler(dep HealthDeps) *HealthHandler {
	return &HealthHandler{dep: dep}
}

// HealthCheck always answers 200. A configured Redis that fails to ping
// only marks the service degraded, since fan-out is optional.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	resp := HealthResponse{
		Status:    statusHealthy,
		Timestamp: time.Now().UTC(),
		Service:   h.dep.ServiceName,
		Version:   h.dep.Version,
		Redis:     h.redisStatus(c.Request.Context()),
	}
	if resp.Redis == "down" {
		resp.Status = statusDegraded
	}
	if h.dep.Inventory != nil {
		resp.Projects = h.dep.Inventory.Stats().TotalProjects
		resp.CatalogCreators = h.dep.Inventory.CatalogSize()
	}
	if h.dep.Hub != nil {
		resp.EventSubscribers = h.dep.Hub.Len()
	}

	c.JSON(http.StatusOK, resp)
}

func (h *HealthHandler) redisStatus(ctx context.Context) string {
	if h.dep.Redis == nil {
		return "disabled"
	}
	pingCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	if err := h.dep.Redis.Ping(pingCtx).Err(); err != nil {
		return "down"
	}
	return "up"
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
