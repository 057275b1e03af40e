package handler

import (
	"tourism-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CustomTourHandler serves custom tour requests
type CustomTourHandler struct {
	requests  *usecase.CustomTourService
	responder *Responder
}

// NewCustomTourHandler creates a custom tour handler
func NewCustomTourHandler(requests *usecase.CustomTourService, responder *Responder) *CustomTourHandler {
	return &CustomTourHandler{requests: requests, responder: responder}
}

// RegisterRoutes registers custom tour routes
func (h *CustomTourHandler) RegisterRoutes(api *gin.RouterGroup, protect gin.HandlerFunc) {
	requests := api.Group("/customize-tour")
	{
		requests.POST("", h.Submit)
		requests.GET("", protect, h.List)
		requests.GET("/:id", protect, h.Get)
		requests.PATCH("/:id/status", protect, h.UpdateStatus)
		requests.DELETE("/:id", protect, h.Delete)
	}
}

// Submit handles POST /customize-tour
func (h *CustomTourHandler) Submit(c *gin.Context) {
	var in usecase.CustomTourInput
	if err := bind(c, &in); err != nil {
		h.responder.Fail(c, err)
		return
	}

	request, err := h.requests.Submit(c.Request.Context(), in)
	if err != nil {
		h.responder.Fail(c, err)
		return
	}
	h.responder.Created(c, "Your custom tour request has been received. We will contact you shortly.", request)
}

// List handles GET /customize-tour, filtered by ?status
func (h *CustomTourHandler) List(c *gin.Context) {
	result, err := h.requests.List(c.Request.Context(), c.Query("status"), pageQuery(c))
	if err != nil {
		h.responder.Fail(c, err)
		return
	}
	h.responder.OK(c, "", result)
}

// Get handles GET /customize-tour/:id
func (h *CustomTourHandler) Get(c *gin.Context) {
	request, err := h.requests.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.responder.Fail(c, err)
		return
	}
	h.responder.OK(c, "", request)
}

// UpdateStatus handles PATCH /customize-tour/:id/status
func (h *CustomTourHandler) UpdateStatus(c *gin.Context) {
	var in usecase.StatusInput
	if err := bind(c, &in); err != nil {
		h.responder.Fail(c, err)
		return
	}

	request, err := h.requests.UpdateStatus(c.Request.Context(), actor(c), c.Param("id"), in.Status)
	if err != nil {
		h.responder.Fail(c, err)
		return
	}
	h.responder.OK(c, "Status updated successfully", request)
}

// Delete handles DELETE /customize-tour/:id
func (h *CustomTourHandler) Delete(c *gin.Context) {
	if err := h.requests.Delete(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		h.responder.Fail(c, err)
		return
	}
	h.responder.OK(c, "Custom tour request deleted successfully", nil)
}
