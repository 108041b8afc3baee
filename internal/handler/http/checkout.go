package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/caffeinepub/amala-organics-1/internal/service"
	"github.com/caffeinepub/amala-organics-1/pkg/httputil"
	"github.com/caffeinepub/amala-organics-1/pkg/validator"
)

// CheckoutHandler handles HTTP requests for both checkout flows.
type CheckoutHandler struct {
	service *service.CheckoutService
	logger  *slog.Logger
}

// NewCheckoutHandler creates a new checkout HTTP handler.
func NewCheckoutHandler(svc *service.CheckoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: svc,
		logger:  logger,
	}
}

// --- Request DTOs ---

// CustomerRequest is the JSON request body carrying buyer details. Field
// validation happens in the service after trimming, so there are no tags here.
type CustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ConfirmRequest is the JSON request body for confirming a GPay transfer.
type ConfirmRequest struct {
	TransactionID string `json:"transaction_id"`
}

// --- Handlers ---

// WhatsAppOrder handles POST /api/v1/checkout/whatsapp
func (h *CheckoutHandler) WhatsAppOrder(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := sessionIDFromContext(r.Context())

	var req CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	handoff, err := h.service.WhatsAppOrder(r.Context(), sessionID, service.CustomerInput(req))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: handoff})
}

// StartGPay handles POST /api/v1/checkout/gpay
func (h *CheckoutHandler) StartGPay(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := sessionIDFromContext(r.Context())

	var req CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	session, err := h.service.StartGPay(r.Context(), sessionID, service.CustomerInput(req))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: session})
}

// ConfirmGPay handles POST /api/v1/checkout/gpay/{checkoutID}/confirm
func (h *CheckoutHandler) ConfirmGPay(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := sessionIDFromContext(r.Context())
	checkoutID := chi.URLParam(r, "checkoutID")

	var req ConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	handoff, err := h.service.ConfirmGPay(r.Context(), sessionID, checkoutID, req.TransactionID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: handoff})
}

// Back handles POST /api/v1/checkout/gpay/{checkoutID}/back
func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := sessionIDFromContext(r.Context())
	checkoutID := chi.URLParam(r, "checkoutID")

	session, err := h.service.Back(r.Context(), sessionID, checkoutID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: session})
}

// Cancel handles DELETE /api/v1/checkout/gpay/{checkoutID}
func (h *CheckoutHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := sessionIDFromContext(r.Context())
	checkoutID := chi.URLParam(r, "checkoutID")

	if err := h.service.Cancel(r.Context(), sessionID, checkoutID); err != nil {
		h.writeError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]string{"status": "cancelled"}})
}

func (h *CheckoutHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		httputil.WriteValidationError(w, err)
		return
	}
	httputil.WriteError(w, r, err, h.logger)
}
