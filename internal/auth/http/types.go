package http

import "github.com/ugchub/ugchub-backend/internal/auth/service"

type Handler struct {
	sessions *service.SessionStore
}

func New(sessions *service.SessionStore) *Handler {
	return &Handler{
		sessions: sessions,
	}
}
