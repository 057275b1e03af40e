package handler

import (
	"tourism-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ReviewHandler serves customer reviews and their moderation
type ReviewHandler struct {
	reviews   *usecase.ReviewService
	responder *Responder
}

// NewReviewHandler creates a review handler
func NewReviewHandler(reviews *usecase.ReviewService, responder *Responder) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, responder: responder}
}

// RegisterRoutes registers review routes
func (h *ReviewHandler) RegisterRoutes(api *gin.RouterGroup, protect gin.HandlerFunc) {
	reviews := api.Group("/reviews")
	{
		reviews.POST("", h.Submit)
		reviews.GET("/approved", h.ListApproved)
		reviews.GET("", protect, h.List)
		reviews.PATCH("/:id/status", protect, h.UpdateStatus)
		reviews.DELETE("/:id", protect, h.Delete)
	}
}

// Submit handles POST /reviews; new reviews wait for moderation
func (h *ReviewHandler) Submit(c *gin.Context) {
	var in usecase.ReviewInput
	if err := bind(c, &in); err != nil {
		h.responder.Fail(c, err)
		return
	}

	review, err := h.reviews.Submit(c.Request.Context(), in)
	if err != nil {
		h.responder.Fail(c, err)
		return
	}
	h.responder.Created(c, "Thank you for your review. It will be published after approval.", review)
}

// ListApproved handles GET /reviews/approved
func (h *ReviewHandler) ListApproved(c *gin.Context) {
	result, err := h.reviews.ListApproved(c.Request.Context(), pageQuery(c))
	if err != nil {
		h.responder.Fail(c, err)
		return
	}
	h.responder.OK(c, "", result)
}

// List handles GET /reviews for moderation
func (h *ReviewHandler) List(c *gin.Context) {
	result, err := h.reviews.List(c.Request.Context(), c.Query("status"), pageQuery(c))
	if err != nil {
		h.responder.Fail(c, err)
		return
	}
	h.responder.OK(c, "", result)
}

// UpdateStatus handles PATCH /reviews/:id/status
func (h *ReviewHandler) UpdateStatus(c *gin.Context) {
	var in usecase.StatusInput
	if err := bind(c, &in); err != nil {
		h.responder.Fail(c, err)
		return
	}

	review, err := h.reviews.UpdateStatus(c.Request.Context(), actor(c), c.Param("id"), in.Status)
	if err != nil {
		h.responder.Fail(c, err)
		return
	}
	h.responder.OK(c, "Review status updated successfully", review)
}

// Delete handles DELETE /reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.reviews.Delete(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		h.responder.Fail(c, err)
		return
	}
	h.responder.OK(c, "Review deleted successfully", nil)
}
