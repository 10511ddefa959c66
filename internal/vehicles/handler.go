package vehicles

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"logistics-service/pkg/apperr"
	"logistics-service/pkg/jwt"
)

// Handler exposes vehicle HTTP endpoints.
type Handler struct{ svc *Service }

// NewHandler wires a handler to the vehicle service.
func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// Routes returns a chi.Router with all vehicle routes.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(jwt.RequireAuth)

	r.Post("/", h.Add)
	r.Get("/", h.ListMine)
	r.Get("/{id}", h.GetByID)

	return r
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	claims := jwt.GetClaims(r.Context())

	var req AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}

	v, err := h.svc.Add(r.Context(), claims.UserID, req)
	if err != nil {
		status := http.StatusInternalServerError
		if apperr.IsInvalid(err) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims := jwt.GetClaims(r.Context())
	list, err := h.svc.ListByUser(r.Context(), claims.UserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	v, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if apperr.IsNotFound(err) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
