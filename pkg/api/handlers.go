package api

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/digitalocean/admissions-form/pkg/clients/admissions"
	"github.com/digitalocean/admissions-form/pkg/middleware"
	"github.com/digitalocean/admissions-form/pkg/models"
	"github.com/digitalocean/admissions-form/pkg/services"
	"github.com/digitalocean/admissions-form/pkg/views"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	client    admissions.Client
	templates *template.Template
	logger    *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(client admissions.Client, templates *template.Template, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		client:    client,
		templates: templates,
		logger:    logger,
	}
}

// Register mounts the routes on router.
func (h *Handlers) Register(router gin.IRouter) {
	router.GET("/", h.Index)
	router.GET(views.FormPath, h.ShowAdmissionsForm)
	router.POST(views.FormPath, h.SubmitAdmissionsForm)
	router.GET("/health", h.HealthCheck)
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Index sends visitors to the admissions form.
func (h *Handlers) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, views.FormPath)
}

// ShowAdmissionsForm renders an empty form, preselecting the city from the
// preferredCity query parameter.
func (h *Handlers) ShowAdmissionsForm(c *gin.Context) {
	prefill := services.PrefillFromURL(c.Request.URL)
	form := services.NewAdmissionsForm(h.client, prefill, h.requestLogger(c))

	h.render(c, http.StatusOK, form, prefill)
}

// submitResponse is returned to callers that ask for JSON.
type submitResponse struct {
	Submitted   bool                    `json:"submitted"`
	Error       string                  `json:"error,omitempty"`
	FieldErrors models.ValidationErrors `json:"fieldErrors,omitempty"`
}

// SubmitAdmissionsForm processes a posted admissions form and re-renders the
// page with the outcome.
func (h *Handlers) SubmitAdmissionsForm(c *gin.Context) {
	log := h.requestLogger(c)

	if err := c.Request.ParseForm(); err != nil {
		log.Warn("Error parsing form", zap.Error(err))
		c.String(http.StatusBadRequest, "Error reading request")
		return
	}

	prefill := services.PrefillFromURL(c.Request.URL)
	form := services.NewAdmissionsForm(h.client, prefill, log)

	// Only the body counts as form input; the query string only carries the prefill.
	err := form.Submit(c.Request.Context(), models.FormValuesFrom(c.Request.PostForm))

	status := http.StatusOK
	var verrs models.ValidationErrors
	switch {
	case err == nil:
	case errors.As(err, &verrs):
		status = http.StatusUnprocessableEntity
	default:
		status = http.StatusBadGateway
	}

	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		state := form.State()
		c.JSON(status, submitResponse{
			Submitted:   state.Submitted,
			Error:       state.Error,
			FieldErrors: state.FieldErrors,
		})
		return
	}

	h.render(c, status, form, prefill)
}

func (h *Handlers) render(c *gin.Context, status int, form *services.AdmissionsForm, prefill services.Prefill) {
	section, err := views.Boundary(h.templates, views.FormView{
		FormState: form.State(),
		Prefill:   prefill,
	})
	if err != nil {
		h.requestLogger(c).Error("Error rendering admissions form", zap.Error(err))
		if section == "" {
			c.String(http.StatusInternalServerError, "Error rendering page")
			return
		}
	}

	c.HTML(status, "page", views.Page{Form: section})
}

func (h *Handlers) requestLogger(c *gin.Context) *zap.Logger {
	return middleware.GetLogger(c, h.logger)
}
