// Package admin serves the authenticated management surface: listing CRUD
// and the analytics dashboard.
package admin

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/diegoportaz91-dot/saludvalleuco/internal/handler"
	"github.com/diegoportaz91-dot/saludvalleuco/internal/model"
	"github.com/diegoportaz91-dot/saludvalleuco/internal/service/analytics"
	"github.com/diegoportaz91-dot/saludvalleuco/internal/service/professional"
	"github.com/diegoportaz91-dot/saludvalleuco/pkg/apperror"
)

type Handler struct {
	professionals *professional.Service
	analytics     *analytics.Service
}

func NewHandler(professionals *professional.Service, analyticsSvc *analytics.Service) *Handler {
	return &Handler{
		professionals: professionals,
		analytics:     analyticsSvc,
	}
}

// RegisterRoutes registers the admin routes; the group must already carry
// the auth gate.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", h.Dashboard)
	r.GET("/profesional/nuevo", h.NewForm)
	r.POST("/profesional/nuevo", h.Create)
	r.GET("/profesional/:id/editar", h.EditForm)
	r.POST("/profesional/:id/editar", h.Update)
	r.POST("/profesional/:id/eliminar", h.Delete)
	r.GET("/analytics", h.Analytics)
}

func (h *Handler) Dashboard(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	search := strings.TrimSpace(c.Query("search"))

	listing, err := h.professionals.ListPage(c.Request.Context(), search, page)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	stats, err := h.professionals.Stats(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"professionals": listing,
		"stats":         stats,
		"search":        search,
	}))
}

// formCatalogs are the closed enumerations the create/edit forms render.
func formCatalogs() gin.H {
	return gin.H{
		"specialties":   model.Specialties,
		"locations":     model.Locations,
		"plans":         []model.Plan{model.PlanBasic, model.PlanPremium},
		"contact_types": []model.ContactType{model.ContactPhone, model.ContactWhatsapp, model.ContactBoth},
	}
}

func (h *Handler) NewForm(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(formCatalogs()))
}

func (h *Handler) Create(c *gin.Context) {
	var input professional.Input
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	p, err := h.professionals.Create(c.Request.Context(), &input)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(p))
}

func (h *Handler) EditForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handler.RespondError(c, apperror.NotFound("professional", err))
		return
	}

	p, err := h.professionals.Get(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	payload := formCatalogs()
	payload["professional"] = p
	c.JSON(http.StatusOK, handler.NewSuccessResponse(payload))
}

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handler.RespondError(c, apperror.NotFound("professional", err))
		return
	}

	var input professional.Input
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	p, err := h.professionals.Update(c.Request.Context(), id, &input)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(p))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handler.RespondError(c, apperror.NotFound("professional", err))
		return
	}

	if err := h.professionals.Delete(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) Analytics(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	report := h.analytics.Report(c.Request.Context(), days)
	c.JSON(http.StatusOK, handler.NewSuccessResponse(report))
}
