// Package public serves the visitor-facing directory surface: homepage,
// search and profile detail.
package public

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/diegoportaz91-dot/saludvalleuco/internal/handler"
	"github.com/diegoportaz91-dot/saludvalleuco/internal/model"
	"github.com/diegoportaz91-dot/saludvalleuco/internal/service/advertisement"
	"github.com/diegoportaz91-dot/saludvalleuco/internal/service/analytics"
	"github.com/diegoportaz91-dot/saludvalleuco/internal/service/professional"
	"github.com/diegoportaz91-dot/saludvalleuco/pkg/apperror"
	"github.com/diegoportaz91-dot/saludvalleuco/pkg/whatsapp"
)

type Handler struct {
	professionals *professional.Service
	analytics     *analytics.Service
	ads           *advertisement.Service
}

func NewHandler(professionals *professional.Service, analyticsSvc *analytics.Service, ads *advertisement.Service) *Handler {
	return &Handler{
		professionals: professionals,
		analytics:     analyticsSvc,
		ads:           ads,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.Home)
	r.GET("/buscar", h.Search)
	r.GET("/profesional/:id", h.Detail)
	r.GET("/anuncios", h.Advertisements)
}

// profileView is a listing plus its derived WhatsApp deep link.
type profileView struct {
	*model.Professional
	ContactLink string `json:"contact_link,omitempty"`
}

func newProfileView(p *model.Professional) *profileView {
	view := &profileView{Professional: p}
	if p.Whatsapp != nil {
		if link, ok := whatsapp.Link(*p.Whatsapp, p.Name); ok {
			view.ContactLink = link
		}
	}
	return view
}

func (h *Handler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	categories, err := h.professionals.QuickCategories(ctx)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	featured, err := h.professionals.Featured(ctx)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	h.analytics.Record(ctx, analytics.MetaFromRequest(c.Request), model.ActionPageView, nil, model.TargetHomepage)

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"quick_categories":       categories,
		"featured_professionals": featured,
	}))
}

func (h *Handler) Search(c *gin.Context) {
	filter := &model.SearchFilter{
		Query:         strings.TrimSpace(c.Query("query")),
		Specialty:     c.Query("specialty"),
		Location:      c.Query("location"),
		AvailableOnly: strings.EqualFold(c.DefaultQuery("available_only", "true"), "true"),
	}

	professionals, err := h.professionals.Search(c.Request.Context(), filter, analytics.MetaFromRequest(c.Request))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	results := make([]*profileView, 0, len(professionals))
	for _, p := range professionals {
		results = append(results, newProfileView(p))
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"professionals": results,
		"filter":        filter,
	}))
}

func (h *Handler) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handler.RespondError(c, apperror.NotFound("professional", err))
		return
	}

	p, err := h.professionals.GetPublic(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	h.analytics.Record(c.Request.Context(), analytics.MetaFromRequest(c.Request), model.ActionProfileView, &id, model.TargetProfessional)

	c.JSON(http.StatusOK, handler.NewSuccessResponse(newProfileView(p)))
}

func (h *Handler) Advertisements(c *gin.Context) {
	ads, err := h.ads.ListActive(c.Request.Context(), c.Query("position"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(ads))
}
