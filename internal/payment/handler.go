// AngelaMos | 2026
// handler.go

package payment

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/trackflow/internal/core"
)

type CheckoutRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type CheckoutSession struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
	ProductID   string `json:"product_id"`
	ProductKind string `json:"product_kind"`
}

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
		r.Post("/stripe/create-checkout", h.CreateCheckout)
	})
}

func (h *Handler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	session, err := h.service.CreateCheckout(req.ProductID)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, session)
}
