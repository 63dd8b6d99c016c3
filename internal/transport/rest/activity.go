package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ecoideias/ecoideias-backend/internal/domain"
	"github.com/ecoideias/ecoideias-backend/internal/service/activity"
)

const defaultHeartbeat = 25 * time.Second

// activityService defines the minimal interface needed by ActivityHandler.
type activityService interface {
	Recent(ctx context.Context, limit int) ([]domain.ActivityEntry, error)
	Subscribe(ctx context.Context) ([]domain.ActivityEntry, *activity.Subscriber, error)
}

// ActivityHandler serves the activity feed and its live stream.
type ActivityHandler struct {
	svc       activityService
	heartbeat time.Duration
	log       *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, heartbeat: defaultHeartbeat, log: logger.With("handler", "activity")}
}

// Recent handles GET /api/activities?limit=.
func (h *ActivityHandler) Recent(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.Recent(r.Context(), queryInt(r, "limit"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"activities": toActivityList(entries)})
}

// Stream handles GET /api/activities/stream. Every event carries the full
// recent list; a comment line keeps idle connections open.
func (h *ActivityHandler) Stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rc := http.NewResponseController(w)
	// Streams outlive the server write timeout.
	_ = rc.SetWriteDeadline(time.Time{})

	initial, sub, err := h.svc.Subscribe(ctx)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if err := writeEvent(w, "activities", toActivityList(initial)); err != nil {
		return
	}
	if err := rc.Flush(); err != nil {
		h.log.WarnContext(ctx, "streaming unsupported", slog.String("error", err.Error()))
		return
	}

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case entries, ok := <-sub.C:
			if !ok {
				return
			}
			if err := writeEvent(w, "activities", toActivityList(entries)); err != nil {
				return
			}
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}

func writeEvent(w http.ResponseWriter, event string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	return err
}
