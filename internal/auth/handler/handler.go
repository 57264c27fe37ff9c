package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"movieswipe-auth/internal/auth"
	"movieswipe-auth/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Authenticator is the slice of the session issuer the wire layer needs.
type Authenticator interface {
	Authenticate(ctx context.Context, rawIDToken string) (*auth.Result, error)
}

type Handler struct {
	auth        Authenticator
	authTimeout time.Duration
}

func NewHandler(a Authenticator, authTimeout time.Duration) *Handler {
	if authTimeout <= 0 {
		authTimeout = 10 * time.Second
	}
	return &Handler{
		auth:        a,
		authTimeout: authTimeout,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/auth", h.authenticate)
}

type authenticateRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

type authenticateResponse struct {
	Message string       `json:"message"`
	Data    *auth.Result `json:"data"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	Message string       `json:"message"`
	Errors  []fieldError `json:"errors,omitempty"`
}

func (h *Handler) authenticate(c *gin.Context) {
	var req authenticateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Validation failed",
			Errors:  fieldErrors(err),
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.authTimeout)
	defer cancel()

	res, err := h.auth.Authenticate(ctx, req.IDToken)
	if err != nil {
		h.writeError(c, err)
		return
	}

	logger.Info("user authenticated", map[string]any{
		"user_id": res.User.ID,
	})

	c.JSON(http.StatusCreated, authenticateResponse{
		Message: "User signed up successfully",
		Data:    res,
	})
}

// writeError maps the closed set of service error kinds onto status
// codes. Anything unclassified is logged and answered opaquely.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, errorResponse{
			Message: "Invalid Google token",
		})
	case errors.Is(err, auth.ErrUserProvisioning):
		logger.Error("user provisioning failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, errorResponse{
			Message: "Failed to process user information",
		})
	default:
		logger.Error("authentication failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, errorResponse{
			Message: "Internal server error",
		})
	}
}

// fieldErrors turns binding failures into per-field detail. Non-validator
// errors (malformed JSON, wrong types) yield no field list.
func fieldErrors(err error) []fieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]fieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := "is invalid"
		if fe.Tag() == "required" {
			msg = "is required"
		}
		out = append(out, fieldError{
			Field:   fe.Field(),
			Message: fe.Field() + " " + msg,
		})
	}
	return out
}
