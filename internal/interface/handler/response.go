package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"tourism-service/internal/usecase"
	"tourism-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint answers with
type Response struct {
	Success bool                 `json:"success"`
	Message string               `json:"message,omitempty"`
	Data    interface{}          `json:"data,omitempty"`
	Error   string               `json:"error,omitempty"`
	Errors  []usecase.FieldError `json:"errors,omitempty"`
}

// Responder writes envelopes and maps service errors to status codes
type Responder struct {
	production bool
	logger     logger.Logger
}

// NewResponder creates a responder. In production, 500 bodies omit the error detail.
func NewResponder(production bool, logger logger.Logger) *Responder {
	return &Responder{production: production, logger: logger}
}

// OK writes a 200 envelope
func (r *Responder) OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: data})
}

// Created writes a 201 envelope
func (r *Responder) Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

// Fail maps err onto the error taxonomy and aborts the request
func (r *Responder) Fail(c *gin.Context, err error) {
	var (
		verr     *usecase.ValidationError
		authErr  *usecase.AuthError
		notFound *usecase.NotFoundError
		conflict *usecase.ConflictError
	)

	switch {
	case errors.As(err, &verr):
		c.AbortWithStatusJSON(http.StatusBadRequest, Response{
			Message: "Validation failed",
			Errors:  verr.Errors,
		})
	case errors.As(err, &authErr):
		c.AbortWithStatusJSON(http.StatusUnauthorized, Response{Message: authErr.Message})
	case errors.As(err, &notFound):
		c.AbortWithStatusJSON(http.StatusNotFound, Response{Message: notFound.Error()})
	case errors.As(err, &conflict):
		c.AbortWithStatusJSON(http.StatusBadRequest, Response{Message: conflict.Message})
	default:
		r.logger.Error("Request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"requestID", c.GetString(requestIDKey),
			"error", err)

		resp := Response{Message: "Something went wrong"}
		if !r.production {
			resp.Error = err.Error()
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
	}
}

// Recover answers a recovered panic with the 500 envelope. It matches
// gin.RecoveryFunc.
func (r *Responder) Recover(c *gin.Context, recovered any) {
	r.Fail(c, fmt.Errorf("panic recovered: %v", recovered))
}

// bind decodes the JSON body into dst. An empty body leaves dst zeroed so
// validation reports the missing fields.
func bind(c *gin.Context, dst interface{}) error {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &usecase.ValidationError{Errors: []usecase.FieldError{{
			Field:   typeErr.Field,
			Message: typeErr.Field + " has an invalid type",
		}}}
	}

	return &usecase.ValidationError{Errors: []usecase.FieldError{{
		Field:   "body",
		Message: "Request body must be valid JSON",
	}}}
}
