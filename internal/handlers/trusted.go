package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cambiove/exchange-api/internal/logger"
	"github.com/cambiove/exchange-api/internal/middlewares"
	"github.com/cambiove/exchange-api/internal/models"
	"github.com/cambiove/exchange-api/internal/services"
)

// TrustedOnboarder defines the trusted-flow surface consumed by the handlers.
type TrustedOnboarder interface {
	Apply(ctx context.Context, userID uuid.UUID, app services.TrustedApplication) (*models.TrustedIntakeDB, error)
	Review(ctx context.Context, intakeID uuid.UUID, decision string) (*models.TrustedIntakeDB, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.TrustedProfileDB, error)
}

// TrustedApplyHTTPRequest represents the JSON body for a trusted intake
// swagger:model TrustedApplyHTTPRequest
type TrustedApplyHTTPRequest struct {
	// Maximum USD per transaction
	// required: true
	// default: 500
	MaxPerTxUsd decimal.Decimal `json:"maxPerTxUsd"`

	// Maximum USD per calendar month
	// required: true
	// default: 5000
	MaxMonthlyUsd decimal.Decimal `json:"maxMonthlyUsd"`

	// Payout hold period in hours
	// default: 24
	HoldHours int `json:"holdHours"`
}

// TrustedReviewHTTPRequest represents the JSON body for the admin review
// swagger:model TrustedReviewHTTPRequest
type TrustedReviewHTTPRequest struct {
	// APPROVED or REJECTED
	// required: true
	// default: APPROVED
	Decision string `json:"decision"`
}

// TrustedErrorResponse represents an error response for trusted-flow operations
// swagger:model TrustedErrorResponse
type TrustedErrorResponse struct {
	// Error message
	// default: trusted intake not found
	Error string `json:"error"`
}

// NewTrustedApplyHandler returns an HTTP handler for a trusted-flow application.
// @Summary Apply for the trusted flow
// @Description Creates or resubmits the caller's trusted third-party intake application.
// @Tags trusted
// @Accept json
// @Produce json
// @Param request body handlers.TrustedApplyHTTPRequest true "Requested limits"
// @Success 201 {object} models.TrustedIntakeDB "Intake pending"
// @Failure 400 {object} handlers.TrustedErrorResponse "Invalid limits"
// @Router /trusted/apply [post]
// @Security BearerAuth
func NewTrustedApplyHandler(svc TrustedOnboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TrustedErrorResponse{Error: "Unauthorized"})
			return
		}

		var req TrustedApplyHTTPRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TrustedErrorResponse{Error: "invalid request body"})
			return
		}

		intake, err := svc.Apply(r.Context(), claims.UserID, services.TrustedApplication{
			MaxPerTxUsd:   req.MaxPerTxUsd,
			MaxMonthlyUsd: req.MaxMonthlyUsd,
			HoldHours:     req.HoldHours,
		})
		if err != nil {
			var verr *services.ValidationError
			switch {
			case errors.As(err, &verr):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TrustedErrorResponse{Error: verr.Error()})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TrustedErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TrustedErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(intake)
	}
}

// NewTrustedReviewHandler returns an HTTP handler for the admin review.
// @Summary Review a trusted intake
// @Description Approves or rejects a trusted-flow application. Approval materializes the limits profile. Admin only.
// @Tags trusted
// @Accept json
// @Produce json
// @Param id path string true "Intake ID"
// @Param request body handlers.TrustedReviewHTTPRequest true "Decision"
// @Success 200 {object} models.TrustedIntakeDB "Decided intake"
// @Failure 400 {object} handlers.TrustedErrorResponse "Invalid decision"
// @Failure 404 {object} handlers.TrustedErrorResponse "Intake not found"
// @Router /trusted/{id} [patch]
// @Security BearerAuth
func NewTrustedReviewHandler(svc TrustedOnboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		intakeID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TrustedErrorResponse{Error: "invalid intake id"})
			return
		}

		var req TrustedReviewHTTPRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TrustedErrorResponse{Error: "invalid request body"})
			return
		}

		intake, err := svc.Review(r.Context(), intakeID, strings.ToUpper(req.Decision))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidDecision):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TrustedErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrIntakeNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TrustedErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TrustedErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(intake)
	}
}

// NewGetTrustedProfileHandler returns an HTTP handler reading the caller's
// trusted limits profile.
// @Summary Get own trusted profile
// @Description Returns the caller's trusted limits profile, or 404 when none has been materialized.
// @Tags trusted
// @Produce json
// @Success 200 {object} models.TrustedProfileDB "Profile"
// @Failure 404 {object} handlers.TrustedErrorResponse "No profile"
// @Router /trusted [get]
// @Security BearerAuth
func NewGetTrustedProfileHandler(svc TrustedOnboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TrustedErrorResponse{Error: "Unauthorized"})
			return
		}

		profile, err := svc.GetProfile(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get trusted profile", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TrustedErrorResponse{Error: "Internal server error"})
			return
		}
		if profile == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(TrustedErrorResponse{Error: "trusted profile not found"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profile)
	}
}
