// Package handler exposes the disclosure HTTP API: disclosed-position reads
// for counterparties, own-position management, and outbound disclosure
// requests.
package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"creditlines/internal/disclosure/models"
	"creditlines/internal/disclosure/requests"
	"creditlines/internal/disclosure/service"
	"creditlines/internal/disclosure/validation"
	id "creditlines/pkg/domain"
	dErrors "creditlines/pkg/domain-errors"
	"creditlines/pkg/platform/httputil"
)

// Handler serves the disclosure endpoints.
type Handler struct {
	positions *service.Service
	requests  *requests.Service
	logger    *slog.Logger
}

// New constructs the handler.
func New(positions *service.Service, reqs *requests.Service, logger *slog.Logger) *Handler {
	return &Handler{
		positions: positions,
		requests:  reqs,
		logger:    logger,
	}
}

// Routes mounts the disclosure API onto a chi router. The guard middleware
// runs inside the typed route so it can read the {type} segment.
func (h *Handler) Routes(r chi.Router, guard func(http.Handler) http.Handler) {
	r.Route("/deposit-loan/{type}", func(r chi.Router) {
		if guard != nil {
			r.Use(guard)
		}
		r.Get("/disclosed", h.ListDisclosed)
		r.Get("/disclosed/summary", h.Summary)
		r.Get("/disclosed/{staticID}", h.GetDisclosed)

		r.Post("/positions", h.CreatePosition)
		r.Put("/positions/{staticID}", h.UpdatePosition)
		r.Delete("/positions/{staticID}", h.DeletePosition)

		r.Post("/requests", h.CreateRequests)
	})
}

// ListDisclosed returns visible disclosed positions, filterable by owner,
// currency and period, newest first.
func (h *Handler) ListDisclosed(w http.ResponseWriter, r *http.Request) {
	positionType, ok := pathType(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	filter := models.PositionFilter{
		OwnerStaticID: id.StaticID(query.Get("ownerStaticId")),
		Currency:      models.Currency(query.Get("currency")),
		Period:        models.Period(query.Get("period")),
	}
	opts := models.FindOptions{
		Skip:  intQuery(query.Get("skip")),
		Limit: intQuery(query.Get("limit")),
	}

	positions, err := h.positions.Find(r.Context(), positionType, filter, opts)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	total, err := h.positions.Count(r.Context(), positionType, filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"items": positions,
		"total": total,
	})
}

// GetDisclosed returns one visible disclosed position.
func (h *Handler) GetDisclosed(w http.ResponseWriter, r *http.Request) {
	positionType, ok := pathType(w, r)
	if !ok {
		return
	}

	position, err := h.positions.Get(r.Context(), positionType, id.StaticID(chi.URLParam(r, "staticID")))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, position)
}

// Summary returns the per-tuple aggregate over visible positions.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	positionType, ok := pathType(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	filter := models.PositionFilter{
		OwnerStaticID: id.StaticID(query.Get("ownerStaticId")),
		Currency:      models.Currency(query.Get("currency")),
		Period:        models.Period(query.Get("period")),
	}

	summaries, err := h.positions.Summary(r.Context(), positionType, filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, summaries)
}

// CreatePosition stores a new own position.
func (h *Handler) CreatePosition(w http.ResponseWriter, r *http.Request) {
	positionType, ok := pathType(w, r)
	if !ok {
		return
	}

	save, err := httputil.Decode[models.SavePosition](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	staticID, err := h.positions.Create(r.Context(), positionType, save)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, map[string]string{"staticId": string(staticID)})
}

// UpdatePosition overwrites an existing own position.
func (h *Handler) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	positionType, ok := pathType(w, r)
	if !ok {
		return
	}

	save, err := httputil.Decode[models.SavePosition](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	position, err := h.positions.Update(r.Context(), positionType, id.StaticID(chi.URLParam(r, "staticID")), save)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, position)
}

// DeletePosition soft-deletes an own position.
func (h *Handler) DeletePosition(w http.ResponseWriter, r *http.Request) {
	positionType, ok := pathType(w, r)
	if !ok {
		return
	}

	if err := h.positions.Delete(r.Context(), positionType, id.StaticID(chi.URLParam(r, "staticID"))); err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusNoContent, nil)
}

// CreateRequests asks counterparties to disclose their terms for a tuple.
func (h *Handler) CreateRequests(w http.ResponseWriter, r *http.Request) {
	positionType, ok := pathType(w, r)
	if !ok {
		return
	}

	save, err := httputil.Decode[requests.SaveRequest](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	staticIDs, err := h.requests.CreateRequests(r.Context(), positionType, save)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, map[string]any{"staticIds": staticIDs})
}

// writeError renders validation failures with their field map and defers the
// rest to the shared translator.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *validation.ValidationError
	if errors.As(err, &vErr) {
		httputil.WriteJSON(w, http.StatusBadRequest, map[string]any{
			"error":             string(dErrors.CodeInvalidInput),
			"error_description": vErr.Error(),
			"fields":            vErr.Fields,
		})
		return
	}

	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
	httputil.WriteError(w, err)
}

// pathType parses the {type} segment; anything but deposit/loan is a 400.
func pathType(w http.ResponseWriter, r *http.Request) (models.DepositLoanType, bool) {
	switch chi.URLParam(r, "type") {
	case "deposit":
		return models.TypeDeposit, true
	case "loan":
		return models.TypeLoan, true
	default:
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "type must be deposit or loan"))
		return "", false
	}
}

func intQuery(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
