package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/akozyreva/marketing-kit/internal/jwt"
	"github.com/akozyreva/marketing-kit/internal/logger"
	"github.com/akozyreva/marketing-kit/internal/services"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// HistoryTokener defines only the methods needed by this handler.
type HistoryTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// HistoryReader defines the interface that the content service must implement.
type HistoryReader interface {
	History(ctx context.Context, userID int64, limit, offset int) ([]services.HistoryItem, error)
}

// HistoryResponse represents a successful history response
// swagger:model HistoryResponse
type HistoryResponse struct {
	// Saved kits, most recent first
	Items []services.HistoryItem `json:"items"`
}

// HistoryErrorResponse represents an error response for history
// swagger:model HistoryErrorResponse
type HistoryErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewHistoryHandler returns an HTTP handler for listing saved kits.
// @Summary Get content history
// @Description Returns the caller's saved marketing kits, most recent first
// @Tags content
// @Produce json
// @Param limit query int false "Page size, max 200" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} handlers.HistoryResponse "Saved kits"
// @Failure 401 {object} handlers.HistoryErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.HistoryErrorResponse "Internal server error"
// @Router /api/v1/history [get]
// @Security BearerAuth
func NewHistoryHandler(svc HistoryReader, tokenGetter HistoryTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized history request: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(HistoryErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to parse token claims", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(HistoryErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		limit := defaultHistoryLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}
		if limit > maxHistoryLimit {
			limit = maxHistoryLimit
		}

		offset := 0
		if v := r.URL.Query().Get("offset"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n >= 0 {
				offset = n
			}
		}

		items, err := svc.History(ctx, claims.UserID, limit, offset)
		if err != nil {
			logger.Log.Errorw("failed to get history", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(HistoryErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HistoryResponse{
			Items: items,
		})
	}
}
