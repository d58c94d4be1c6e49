package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apimw "github.com/ugchub/ugchub-backend/internal/api/http/middleware"
	"github.com/ugchub/ugchub-backend/internal/events"
	"github.com/ugchub/ugchub-backend/internal/logging"
)

const (
	streamKeepAlive = 15 * time.Second
	streamBuffer    = 32
)

// StreamProjectEvents streams project mutations using Server-Sent Events.
// The first event is the current project list; after that every hub event
// on the projects topic is forwarded as "event: <type>".
func (h *Handler) StreamProjectEvents(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // nginx: disable buffering

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	ctx := c.Request.Context()
	log := logging.New(ctx)

	// Subscribe before taking the snapshot so nothing falls in between.
	ch := make(chan events.Event, streamBuffer)
	if h.hub != nil {
		cancel := h.hub.Subscribe(func(ev events.Event) {
			if ev.Topic != events.TopicProjects {
				return
			}
			// Publish runs on the mutating goroutine; never block it on a slow client.
			select {
			case ch <- ev:
			default:
				log.Warnf("projects.stream", "dropping %s for %s: client too slow", ev.Type, ev.Subject)
			}
		})
		defer cancel()
	}

	initialData, err := json.Marshal(gin.H{"projects": newProjectViews(h.projects.Projects(), apimw.Printer(c))})
	if err != nil {
		log.Error("projects.stream", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	fmt.Fprintf(c.Writer, "event: initial\ndata: %s\n\n", string(initialData))
	flusher.Flush()

	ticker := time.NewTicker(streamKeepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			fmt.Fprint(c.Writer, ": keep-alive\n\n")
			flusher.Flush()

		case ev := <-ch:
			data, err := json.Marshal(ev)
			if err != nil {
				log.Error("projects.stream", err)
				continue
			}
			fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", ev.Type, string(data))
			flusher.Flush()
		}
	}
}
