package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akozyreva/marketing-kit/internal/jwt"
	"github.com/akozyreva/marketing-kit/internal/kit"
	"github.com/akozyreva/marketing-kit/internal/logger"
	"github.com/akozyreva/marketing-kit/internal/services"
)

// GenerateTokener defines only the methods needed by this handler.
type GenerateTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// KitGenerator defines the interface that the content service must implement.
type KitGenerator interface {
	Generate(ctx context.Context, userID int64, brief kit.Brief, image []byte, imageMIME string) (*services.GeneratedKit, error)
}

// GenerateRequest represents the JSON body for kit generation
// swagger:model GenerateRequest
type GenerateRequest struct {
	// Product name
	// required: true
	// default: Copilot Studio
	ProductName string `json:"product_name"`

	// Product description
	// default: A unified conversational AI platform
	Description string `json:"description"`

	// Tone of the generated copy
	// default: Professional & Authoritative
	Tone string `json:"tone"`

	// Target audience
	// default: Enterprise CTOs, developers
	Audience string `json:"audience"`

	// Call to action
	// default: Request a personalized demo
	CallToAction string `json:"call_to_action"`

	// Optional product image shown to the model as visual context, base64-encoded
	ProductImage string `json:"product_image,omitempty"`

	// MIME type of product_image, e.g. image/png
	ProductImageMIME string `json:"product_image_mime,omitempty"`
}

// GenerateResponse represents a successful generation response
// swagger:model GenerateResponse
type GenerateResponse struct {
	// Strategic headline
	Headline string `json:"headline"`

	// Illustrative image URL, empty when none was found
	ImageURL string `json:"image_url"`

	// Titled sections of the marketing text kit
	Sections []kit.Section `json:"sections"`
}

// GenerateErrorResponse represents an error response for generation
// swagger:model GenerateErrorResponse
type GenerateErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewGenerateHandler returns an HTTP handler for marketing kit generation.
// @Summary Generate a marketing kit
// @Description Generates marketing copy and an illustrative image for a product and saves it to the caller's history
// @Tags content
// @Accept json
// @Produce json
// @Param generateRequest body handlers.GenerateRequest true "Generation request"
// @Success 200 {object} handlers.GenerateResponse "Generated marketing kit"
// @Failure 400 {object} handlers.GenerateErrorResponse "Invalid request"
// @Failure 401 {object} handlers.GenerateErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.GenerateErrorResponse "Internal server error"
// @Router /api/v1/generate [post]
// @Security BearerAuth
func NewGenerateHandler(svc KitGenerator, tokenGetter GenerateTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized generate request: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(GenerateErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to parse token claims", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(GenerateErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		var req GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GenerateErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		var image []byte
		if req.ProductImage != "" {
			image, err = base64.StdEncoding.DecodeString(req.ProductImage)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(GenerateErrorResponse{
					Error: "invalid product image encoding",
				})
				return
			}
		}

		result, err := svc.Generate(ctx, claims.UserID, kit.Brief{
			ProductName:  req.ProductName,
			Description:  req.Description,
			Tone:         req.Tone,
			Audience:     req.Audience,
			CallToAction: req.CallToAction,
		}, image, req.ProductImageMIME)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProductNameRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(GenerateErrorResponse{
					Error: "Product name is required",
				})
			default:
				logger.Log.Errorw("failed to generate kit", "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GenerateErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GenerateResponse{
			Headline: result.Headline,
			ImageURL: result.ImageURL,
			Sections: result.Sections,
		})
	}
}
