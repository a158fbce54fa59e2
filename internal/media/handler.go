// AngelaMos | 2026
// handler.go

package media

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/trackflow/internal/core"
	"github.com/carterperez-dev/trackflow/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/media", h.ListPublic)
}

func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin/media", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Post("/add", h.Add)
		r.Post("/sync", h.Sync)
	})
}

func (h *Handler) ListPublic(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListPublic(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToMediaResponseList(items))
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddMediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	m, err := h.service.Add(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToMediaResponse(m))
}

func (h *Handler) Sync(w http.ResponseWriter, r *http.Request) {
	var req SyncMediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	m, err := h.service.SyncFromYoutube(
		r.Context(),
		middleware.GetUserID(r.Context()),
		req,
	)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "could not extract a YouTube video id")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToMediaResponse(m))
}
