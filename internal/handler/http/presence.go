package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftwatch/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwatch/attendance-backend-go/internal/handler/http/response"
)

type PresenceHandler interface {
	// GetActive returns the current presence snapshot for one pool
	GetActive(w http.ResponseWriter, r *http.Request)
}

type presenceHandlerImpl struct {
	presenceService attendance.PresenceService
	pools           map[string]attendance.Pool
	defaultPool     string
}

func NewPresenceHandler(presenceService attendance.PresenceService, pools []attendance.Pool, defaultPool string) PresenceHandler {
	byName := make(map[string]attendance.Pool, len(pools))
	for _, p := range pools {
		byName[p.Name] = p
	}
	return &presenceHandlerImpl{
		presenceService: presenceService,
		pools:           byName,
		defaultPool:     defaultPool,
	}
}

// GetActive handles GET /presence/active and GET /presence/active/{pool}
func (h *presenceHandlerImpl) GetActive(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "pool")
	if name == "" {
		name = h.defaultPool
	}

	pool, ok := h.pools[name]
	if !ok {
		response.NotFound(w, "Unknown presence pool")
		return
	}

	snapshot, err := h.presenceService.Snapshot(r.Context(), pool)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, snapshot)
}
