package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cambiove/exchange-api/internal/logger"
	"github.com/cambiove/exchange-api/internal/middlewares"
	"github.com/cambiove/exchange-api/internal/models"
	"github.com/cambiove/exchange-api/internal/services"
)

// Verifier defines the KYC surface consumed by the handlers.
type Verifier interface {
	Submit(ctx context.Context, userID uuid.UUID, documentURL, selfieURL string) (*models.VerificationDB, error)
	Decide(ctx context.Context, verificationID uuid.UUID, decision string) (*models.VerificationDB, error)
	GetForUser(ctx context.Context, userID uuid.UUID) (*models.VerificationDB, error)
	ListPending(ctx context.Context) ([]models.VerificationDB, error)
}

// SubmitVerificationHTTPRequest represents the JSON body for a KYC submission
// swagger:model SubmitVerificationHTTPRequest
type SubmitVerificationHTTPRequest struct {
	// Hosted identity document URL
	// required: true
	DocumentURL string `json:"documentUrl"`

	// Hosted selfie URL
	// required: true
	SelfieURL string `json:"selfieUrl"`
}

// DecideVerificationHTTPRequest represents the JSON body for an admin decision
// swagger:model DecideVerificationHTTPRequest
type DecideVerificationHTTPRequest struct {
	// APPROVED or REJECTED
	// required: true
	// default: APPROVED
	Decision string `json:"decision"`
}

// VerificationErrorResponse represents an error response for KYC operations
// swagger:model VerificationErrorResponse
type VerificationErrorResponse struct {
	// Error message
	// default: verification not found
	Error string `json:"error"`
}

// NewSubmitVerificationHandler returns an HTTP handler for KYC submission.
// @Summary Submit identity verification
// @Description Upserts the caller's verification to PENDING. A resubmission after rejection restarts the cycle.
// @Tags verification
// @Accept json
// @Produce json
// @Param request body handlers.SubmitVerificationHTTPRequest true "Documents"
// @Success 201 {object} models.VerificationDB "Verification pending"
// @Failure 400 {object} handlers.VerificationErrorResponse "Missing documents"
// @Router /verification [post]
// @Security BearerAuth
func NewSubmitVerificationHandler(svc Verifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(VerificationErrorResponse{Error: "Unauthorized"})
			return
		}

		var req SubmitVerificationHTTPRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(VerificationErrorResponse{Error: "invalid request body"})
			return
		}

		verification, err := svc.Submit(r.Context(), claims.UserID, req.DocumentURL, req.SelfieURL)
		if err != nil {
			var verr *services.ValidationError
			switch {
			case errors.As(err, &verr):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(VerificationErrorResponse{Error: verr.Error()})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(VerificationErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(VerificationErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(verification)
	}
}

// NewGetVerificationHandler returns an HTTP handler reading the caller's KYC state.
// @Summary Get own verification
// @Description Returns the caller's verification record, or 404 when never submitted.
// @Tags verification
// @Produce json
// @Success 200 {object} models.VerificationDB "Verification"
// @Failure 404 {object} handlers.VerificationErrorResponse "Never submitted"
// @Router /verification [get]
// @Security BearerAuth
func NewGetVerificationHandler(svc Verifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(VerificationErrorResponse{Error: "Unauthorized"})
			return
		}

		verification, err := svc.GetForUser(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get verification", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(VerificationErrorResponse{Error: "Internal server error"})
			return
		}
		if verification == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(VerificationErrorResponse{Error: "verification not found"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(verification)
	}
}

// NewListPendingVerificationsHandler returns an HTTP handler for the admin review queue.
// @Summary List pending verifications
// @Description Returns the verification review queue, oldest first. Admin only.
// @Tags verification
// @Produce json
// @Success 200 {array} models.VerificationDB "Pending verifications"
// @Router /admin/verifications [get]
// @Security BearerAuth
func NewListPendingVerificationsHandler(svc Verifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pending, err := svc.ListPending(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list pending verifications", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(VerificationErrorResponse{Error: "Internal server error"})
			return
		}
		if pending == nil {
			pending = []models.VerificationDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(pending)
	}
}

// NewDecideVerificationHandler returns an HTTP handler for the admin decision.
// @Summary Decide a verification
// @Description Approves or rejects a pending verification and notifies the customer. Admin only.
// @Tags verification
// @Accept json
// @Produce json
// @Param id path string true "Verification ID"
// @Param request body handlers.DecideVerificationHTTPRequest true "Decision"
// @Success 200 {object} models.VerificationDB "Decided verification"
// @Failure 400 {object} handlers.VerificationErrorResponse "Invalid decision"
// @Failure 404 {object} handlers.VerificationErrorResponse "Verification not found"
// @Router /verification/{id} [patch]
// @Security BearerAuth
func NewDecideVerificationHandler(svc Verifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		verificationID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(VerificationErrorResponse{Error: "invalid verification id"})
			return
		}

		var req DecideVerificationHTTPRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(VerificationErrorResponse{Error: "invalid request body"})
			return
		}

		verification, err := svc.Decide(r.Context(), verificationID, strings.ToUpper(req.Decision))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidDecision):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(VerificationErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrVerificationNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(VerificationErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(VerificationErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(verification)
	}
}
