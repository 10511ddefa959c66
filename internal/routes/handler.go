package routes

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"logistics-service/pkg/apperr"
	"logistics-service/pkg/jwt"
)

// Handler exposes route optimization HTTP endpoints.
type Handler struct{ svc *Service }

// NewHandler wires a handler to the route service.
func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// Routes returns a chi.Router with all route optimization routes.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(jwt.RequireAuth)

	r.Post("/shipments/{shipmentId}/optimize", h.Optimize)
	r.Get("/shipments/{shipmentId}/latest", h.Latest)
	r.Get("/results/{id}", h.GetResult)

	return r
}

func (h *Handler) Optimize(w http.ResponseWriter, r *http.Request) {
	shipmentID := chi.URLParam(r, "shipmentId")
	res, err := h.svc.Optimize(r.Context(), shipmentID)
	if err != nil {
		writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) Latest(w http.ResponseWriter, r *http.Request) {
	shipmentID := chi.URLParam(r, "shipmentId")
	res, err := h.svc.LatestForShipment(r.Context(), shipmentID)
	if err != nil {
		writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) GetResult(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	res, err := h.svc.GetResult(r.Context(), id)
	if err != nil {
		writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func statusFor(err error) int {
	switch {
	case apperr.IsNotFound(err):
		return http.StatusNotFound
	case apperr.IsInvalid(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
