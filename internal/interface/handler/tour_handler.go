package handler

import (
	"tourism-service/internal/domain/repository"
	"tourism-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// TourHandler serves the tour catalogue
type TourHandler struct {
	tours     *usecase.TourService
	responder *Responder
}

// NewTourHandler creates a tour handler
func NewTourHandler(tours *usecase.TourService, responder *Responder) *TourHandler {
	return &TourHandler{tours: tours, responder: responder}
}

// RegisterRoutes registers tour routes
func (h *TourHandler) RegisterRoutes(api *gin.RouterGroup, protect gin.HandlerFunc) {
	tours := api.Group("/tours")
	{
		tours.GET("", h.ListPublic)
		tours.GET("/slug/:slug", h.GetBySlug)
		tours.GET("/:id", h.Get)
		tours.POST("", protect, h.Create)
		tours.PUT("/:id", protect, h.Update)
		tours.DELETE("/:id", protect, h.Delete)
	}

	api.GET("/admin/tours", protect, h.List)
}

// ListPublic handles GET /tours, returning active tours grouped by category
func (h *TourHandler) ListPublic(c *gin.Context) {
	grouped, err := h.tours.ListPublic(c.Request.Context())
	if err != nil {
		h.responder.Fail(c, err)
		return
	}
	h.responder.OK(c, "", grouped)
}

// GetBySlug handles GET /tours/slug/:slug
func (h *TourHandler) GetBySlug(c *gin.Context) {
	tour, err := h.tours.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.responder.Fail(c, err)
		return
	}
	h.responder.OK(c, "", tour)
}

// Get handles GET /tours/:id, accepting either an id or a slug
func (h *TourHandler) Get(c *gin.Context) {
	tour, err := h.tours.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.responder.Fail(c, err)
		return
	}
	h.responder.OK(c, "", tour)
}

// List handles GET /admin/tours with every status
func (h *TourHandler) List(c *gin.Context) {
	filter := repository.TourFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
	}

	result, err := h.tours.List(c.Request.Context(), filter, pageQuery(c))
	if err != nil {
		h.responder.Fail(c, err)
		return
	}
	h.responder.OK(c, "", result)
}

// Create handles POST /tours
func (h *TourHandler) Create(c *gin.Context) {
	var in usecase.TourInput
	if err := bind(c, &in); err != nil {
		h.responder.Fail(c, err)
		return
	}

	tour, err := h.tours.Create(c.Request.Context(), actor(c), in)
	if err != nil {
		h.responder.Fail(c, err)
		return
	}
	h.responder.Created(c, "Tour created successfully", tour)
}

// Update handles PUT /tours/:id as a partial update
func (h *TourHandler) Update(c *gin.Context) {
	var in usecase.TourUpdate
	if err := bind(c, &in); err != nil {
		h.responder.Fail(c, err)
		return
	}

	tour, err := h.tours.Update(c.Request.Context(), actor(c), c.Param("id"), in)
	if err != nil {
		h.responder.Fail(c, err)
		return
	}
	h.responder.OK(c, "Tour updated successfully", tour)
}

// Delete handles DELETE /tours/:id
func (h *TourHandler) Delete(c *gin.Context) {
	if err := h.tours.Delete(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		h.responder.Fail(c, err)
		return
	}
	h.responder.OK(c, "Tour deleted successfully", nil)
}
