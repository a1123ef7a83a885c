package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"kacip-storefront/app"
	"kacip-storefront/middleware"

	"github.com/gin-gonic/gin"
)

const (
	eventBuffer    = 32
	heartbeatEvery = 15 * time.Second
)

type TypeaheadRequest struct {
	Query string `json:"q"`
}

// Events streams the client's cart, session, notification and search changes as
// server-sent events. The current cart and session are sent first.
func (h *Handler) Events(c *gin.Context) {
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Streaming not supported"})
		return
	}

	inst := middleware.Instance(c)
	events, unsubscribe := inst.Events.Subscribe(eventBuffer)
	defer unsubscribe()

	w := c.Writer
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if err := sendEvent(w, flusher, string(app.EventCart), inst.Cart.Snapshot()); err != nil {
		return
	}
	if err := sendEvent(w, flusher, string(app.EventSession), inst.Session.Snapshot()); err != nil {
		return
	}

	heartbeat := time.NewTicker(heartbeatEvery)
	defer heartbeat.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case e, open := <-events:
			if !open {
				return
			}
			if err := sendEvent(w, flusher, string(e.Type), e.Data); err != nil {
				return
			}
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func sendEvent(w http.ResponseWriter, flusher http.Flusher, eventType string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventType, payload); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}

// Typeahead feeds a keystroke into the client's debounced search. Only the last query
// of a burst is run; its result arrives as a "search" event.
func (h *Handler) Typeahead(c *gin.Context) {
	var req TypeaheadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	middleware.Instance(c).Search(req.Query)
	c.JSON(http.StatusAccepted, gin.H{"message": "Search scheduled", "q": req.Query})
}

// ListNotifications returns the client's unexpired messages, oldest first
func (h *Handler) ListNotifications(c *gin.Context) {
	msgs := middleware.Instance(c).Notices.Active()
	c.JSON(http.StatusOK, gin.H{"count": len(msgs), "notifications": msgs})
}

func (h *Handler) DismissNotification(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification id"})
		return
	}
	if !middleware.Instance(c).Notices.Dismiss(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification dismissed"})
}
