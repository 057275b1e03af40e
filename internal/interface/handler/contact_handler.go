package handler

import (
	"tourism-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ContactHandler serves the contact form and its admin inbox
type ContactHandler struct {
	contacts  *usecase.ContactService
	responder *Responder
}

// NewContactHandler creates a contact handler
func NewContactHandler(contacts *usecase.ContactService, responder *Responder) *ContactHandler {
	return &ContactHandler{contacts: contacts, responder: responder}
}

// RegisterRoutes registers contact routes
func (h *ContactHandler) RegisterRoutes(api *gin.RouterGroup, protect gin.HandlerFunc) {
	contact := api.Group("/contact")
	{
		contact.POST("", h.Submit)
		contact.GET("", protect, h.List)
		contact.GET("/:id", protect, h.Get)
		contact.PATCH("/:id/status", protect, h.UpdateStatus)
		contact.DELETE("/:id", protect, h.Delete)
	}
}

// Submit handles POST /contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var in usecase.ContactInput
	if err := bind(c, &in); err != nil {
		h.responder.Fail(c, err)
		return
	}

	contact, err := h.contacts.Submit(c.Request.Context(), in)
	if err != nil {
		h.responder.Fail(c, err)
		return
	}
	h.responder.Created(c, "Thank you for your message. We will get back to you soon.", contact)
}

// List handles GET /contact, filtered by ?status
func (h *ContactHandler) List(c *gin.Context) {
	result, err := h.contacts.List(c.Request.Context(), c.Query("status"), pageQuery(c))
	if err != nil {
		h.responder.Fail(c, err)
		return
	}
	h.responder.OK(c, "", result)
}

// Get handles GET /contact/:id
func (h *ContactHandler) Get(c *gin.Context) {
	contact, err := h.contacts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.responder.Fail(c, err)
		return
	}
	h.responder.OK(c, "", contact)
}

// UpdateStatus handles PATCH /contact/:id/status
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	var in usecase.StatusInput
	if err := bind(c, &in); err != nil {
		h.responder.Fail(c, err)
		return
	}

	contact, err := h.contacts.UpdateStatus(c.Request.Context(), actor(c), c.Param("id"), in.Status)
	if err != nil {
		h.responder.Fail(c, err)
		return
	}
	h.responder.OK(c, "Status updated successfully", contact)
}

// Delete handles DELETE /contact/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.contacts.Delete(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		h.responder.Fail(c, err)
		return
	}
	h.responder.OK(c, "Contact message deleted successfully", nil)
}
