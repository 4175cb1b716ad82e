package controller

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"babashop/internal/checkout/usecase"
	"babashop/internal/domain"
	"babashop/internal/dto"
	apperrors "babashop/internal/errors"
	"babashop/internal/infrastructure/metrics"
	"babashop/internal/session"
)

type CheckoutController struct {
	useCase *usecase.CheckoutUseCase
	logger  *zap.Logger
}

func NewCheckoutController(useCase *usecase.CheckoutUseCase, logger *zap.Logger) *CheckoutController {
	return &CheckoutController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *CheckoutController) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	store, ok := session.StoreFromContext(r.Context())
	if !ok {
		logger.Error("no session cart on request context")
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "no session established",
		})
		return
	}

	var req dto.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	customer := domain.CustomerInfo{Name: req.Name, Phone: req.Phone}

	result, err := c.useCase.Checkout(r.Context(), store, customer)
	if err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			for _, d := range ve.Details {
				if d.Code != "" {
					metrics.CheckoutValidationFailuresTotal.WithLabelValues(d.Code).Inc()
				}
			}
			c.writeValidationError(w, ve.Message, ve.Details...)
			return
		}
		logger.Error("checkout failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	metrics.CheckoutsFormattedTotal.Inc()

	c.writeJSON(w, http.StatusOK, dto.CheckoutResponse{
		TraceID:        traceID,
		Transcript:     result.Transcript,
		ChannelAddress: result.ChannelAddress,
		QRCodePNG:      base64.StdEncoding.EncodeToString(result.QRPNG),
		Total:          result.Total,
		Timestamp:      time.Now().UTC(),
	})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *CheckoutController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *CheckoutController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
