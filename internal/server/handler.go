package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"postcraft/internal/analytics"
	"postcraft/internal/engine"
	"postcraft/internal/logging"
	"postcraft/internal/metrics"
	"postcraft/internal/platform"
	"postcraft/internal/schedule"
)

const maxBodyBytes = 1 << 20

// Handler serves the engine over HTTP. It holds no per-request state.
type Handler struct {
	engine *engine.Engine
	now    func() time.Time
}

func NewHandler(e *engine.Engine, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{engine: e, now: now}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) platforms(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, platform.Catalog())
}

func (h *Handler) adapt(w http.ResponseWriter, r *http.Request) {
	var req adaptRequest
	if !h.decode(w, r, &req) {
		return
	}
	p, err := parsePlatform(req.Platform)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := h.engine.Adapt(req.draft(), p)
	metrics.ObserveRendering(out)
	writeSuccess(w, http.StatusOK, out)
}

func (h *Handler) adaptAll(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if !h.decode(w, r, &req) {
		return
	}
	rs := h.engine.AdaptForAllPlatforms(req.draft())
	for _, rendering := range rs {
		metrics.ObserveRendering(rendering)
	}
	writeSuccess(w, http.StatusOK, adaptAllResponse{Renderings: rs, Summary: analytics.Summarize(rs)})
}

func (h *Handler) preflight(w http.ResponseWriter, r *http.Request) {
	var req preflightRequest
	if !h.decode(w, r, &req) {
		return
	}
	p, err := parsePlatform(req.Platform)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	hasImage, hasVideo := req.media()
	report := h.engine.Validate(req.draft(), p, hasImage, hasVideo)
	metrics.ObservePreflight(report)
	writeSuccess(w, http.StatusOK, report)
}

func (h *Handler) predict(w http.ResponseWriter, r *http.Request) {
	var req adaptRequest
	if !h.decode(w, r, &req) {
		return
	}
	p, err := parsePlatform(req.Platform)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	pred := h.engine.Predict(req.draft(), p)
	metrics.ObservePrediction(pred)
	writeSuccess(w, http.StatusOK, pred)
}

func (h *Handler) schedule(w http.ResponseWriter, r *http.Request) {
	p, err := parsePlatform(chi.URLParam(r, "platform"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	now := h.now()
	if v := r.URL.Query().Get("now"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			h.fail(w, r, fmt.Errorf("%w: now must be RFC3339: %v", ErrInvalidInput, err))
			return
		}
		now = t
	}
	writeSuccess(w, http.StatusOK, scheduleResponse{
		Platform: p,
		Now:      now,
		Next:     h.engine.NextOptimalTime(p, now),
		Upcoming: schedule.Upcoming(p, now, 5),
	})
}

func (h *Handler) hashtags(w http.ResponseWriter, r *http.Request) {
	var req hashtagRequest
	if !h.decode(w, r, &req) {
		return
	}
	p, err := parsePlatform(req.Platform)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var tags []string
	if req.Niche != "" {
		tags = h.engine.SuggestForNiche(req.Caption, req.Niche, p, req.Existing)
	} else {
		tags = h.engine.Suggest(req.Caption, p, req.Existing)
	}
	writeSuccess(w, http.StatusOK, hashtagResponse{Platform: p, Hashtags: tags})
}

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	var req preflightRequest
	if !h.decode(w, r, &req) {
		return
	}
	p, err := parsePlatform(req.Platform)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	hasImage, hasVideo := req.media()
	a := h.engine.Analyze(req.draft(), p, hasImage, hasVideo)
	metrics.ObserveRendering(a.Rendering)
	metrics.ObservePreflight(a.Preflight)
	metrics.ObservePrediction(a.Prediction)
	writeSuccess(w, http.StatusOK, a)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		h.fail(w, r, fmt.Errorf("%w: %w", ErrInvalidInput, err))
		return false
	}
	return true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, code := mapError(err)
	reqID := requestIDFromContext(r.Context())
	if status >= http.StatusInternalServerError {
		logging.Error("request_failed", logging.Fields{"error": err.Error(), "request_id": reqID})
	}
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		status, code = http.StatusRequestEntityTooLarge, "body_too_large"
	}
	writeError(w, status, code, err.Error(), reqID)
}
