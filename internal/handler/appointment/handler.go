package appointment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medicore/hms-api/internal/handler"
	"github.com/medicore/hms-api/internal/model"
	"github.com/medicore/hms-api/internal/service/appointment"
)

type Handler struct {
	service *appointment.Service
}

func NewHandler(service *appointment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.GET("", h.ListAppointments)
		appointments.POST("", h.CreateAppointment)
		appointments.GET("/:id", h.GetAppointment)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.DELETE("/:id", h.DeleteAppointment)
	}
}

func (h *Handler) ListAppointments(c *gin.Context) {
	rows, err := h.service.ListAppointments(c.Request.Context())
	if err != nil {
		c.JSON(handler.StatusFor(err), handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(rows))
}

func (h *Handler) GetAppointment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid appointment ID"))
		return
	}

	apt, err := h.service.GetAppointment(c.Request.Context(), id)
	if err != nil {
		c.JSON(handler.StatusFor(err), handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(apt))
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	apt, err := h.service.CreateAppointment(c.Request.Context(), &req)
	if err != nil {
		c.JSON(handler.StatusFor(err), handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(apt))
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid appointment ID"))
		return
	}

	var req model.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	apt, err := h.service.UpdateAppointment(c.Request.Context(), id, &req)
	if err != nil {
		c.JSON(handler.StatusFor(err), handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(apt))
}

// DeleteAppointment serves both the delete and the mark-done buttons.
func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid appointment ID"))
		return
	}

	if err := h.service.DeleteAppointment(c.Request.Context(), id); err != nil {
		c.JSON(handler.StatusFor(err), handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}
