package handler

import (
	"tourism-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves login and the back-office overview
type AdminHandler struct {
	auth      *usecase.AuthService
	dashboard *usecase.DashboardService
	responder *Responder
}

// NewAdminHandler creates an admin handler
func NewAdminHandler(auth *usecase.AuthService, dashboard *usecase.DashboardService, responder *Responder) *AdminHandler {
	return &AdminHandler{auth: auth, dashboard: dashboard, responder: responder}
}

// RegisterRoutes registers admin routes
func (h *AdminHandler) RegisterRoutes(api *gin.RouterGroup, protect gin.HandlerFunc) {
	admin := api.Group("/admin")
	{
		admin.POST("/login", h.Login)
		admin.GET("/me", protect, h.Me)
		admin.GET("/dashboard", protect, h.Dashboard)
		admin.POST("/admins", protect, h.CreateAdmin)
	}
}

// Login handles POST /admin/login and returns a signed token
func (h *AdminHandler) Login(c *gin.Context) {
	var in usecase.LoginInput
	if err := bind(c, &in); err != nil {
		h.responder.Fail(c, err)
		return
	}

	result, err := h.auth.Login(c.Request.Context(), c.ClientIP(), in)
	if err != nil {
		h.responder.Fail(c, err)
		return
	}
	h.responder.OK(c, "Login successful", result)
}

// Me handles GET /admin/me
func (h *AdminHandler) Me(c *gin.Context) {
	h.responder.OK(c, "", currentAdmin(c))
}

// Dashboard handles GET /admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	overview, err := h.dashboard.Overview(c.Request.Context())
	if err != nil {
		h.responder.Fail(c, err)
		return
	}
	h.responder.OK(c, "", overview)
}

// CreateAdmin handles POST /admin/admins
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var in usecase.AdminInput
	if err := bind(c, &in); err != nil {
		h.responder.Fail(c, err)
		return
	}

	admin, err := h.auth.CreateAdmin(c.Request.Context(), actor(c), in)
	if err != nil {
		h.responder.Fail(c, err)
		return
	}
	h.responder.Created(c, "Admin created successfully", admin)
}
