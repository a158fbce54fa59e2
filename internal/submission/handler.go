// AngelaMos | 2026
// handler.go

package submission

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

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/submissions", h.Create)
		r.Post("/submit", h.LegacySubmit)
		r.Get("/user/submissions", h.ListMine)
	})
}

func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin/submissions", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Post("/{submissionID}/review", h.Review)
		r.Get("/export", h.ExportCSV)
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	h.create(w, r, req)
}

// LegacySubmit accepts the old flat payload and forwards it through the
// same create path.
func (h *Handler) LegacySubmit(w http.ResponseWriter, r *http.Request) {
	var req LegacySubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	h.create(w, r, req.ToCreateRequest())
}

func (h *Handler) create(
	w http.ResponseWriter,
	r *http.Request,
	req CreateSubmissionRequest,
) {
	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	caller := middleware.GetUser(r.Context())
	if caller == nil {
		core.Unauthorized(w, "")
		return
	}

	sub, err := h.service.Create(r.Context(), caller, req)
	if err != nil {
		if errors.Is(err, core.ErrNoCredits) {
			core.JSONError(w, core.NoCreditsError())
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToSubmissionResponse(sub))
}

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	subs, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToSubmissionResponseList(subs))
}

func (h *Handler) Review(w http.ResponseWriter, r *http.Request) {
	submissionID := chi.URLParam(r, "submissionID")

	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	reviewerID := middleware.GetUserID(r.Context())

	rev, err := h.service.Review(r.Context(), reviewerID, submissionID, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "submission")
			return
		}
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, err.Error())
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToReviewResponse(rev))
}

// ExportCSV streams the full submission list as an attachment.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.ExportCSV(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set(
		"Content-Disposition",
		`attachment; filename="submissions.csv"`,
	)
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // best-effort response write
	_, _ = w.Write(data)
}
