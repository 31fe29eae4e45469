package doctor

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medicore/hms-api/internal/handler"
	"github.com/medicore/hms-api/internal/model"
	"github.com/medicore/hms-api/internal/service/doctor"
)

type Handler struct {
	service *doctor.Service
}

func NewHandler(service *doctor.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	doctors := r.Group("/doctors")
	{
		doctors.GET("", h.ListDoctors)
		doctors.GET("/refs", h.ListRefs)
		doctors.POST("", h.CreateDoctor)
		doctors.GET("/:id", h.GetDoctor)
		doctors.PUT("/:id", h.UpdateDoctor)
		doctors.DELETE("/:id", h.DeleteDoctor)
	}
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.service.ListDoctors(c.Request.Context())
	if err != nil {
		c.JSON(handler.StatusFor(err), handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctors))
}

// ListRefs serves the appointment form's doctor picker.
func (h *Handler) ListRefs(c *gin.Context) {
	refs, err := h.service.ListRefs(c.Request.Context())
	if err != nil {
		c.JSON(handler.StatusFor(err), handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(refs))
}

func (h *Handler) GetDoctor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid doctor ID"))
		return
	}

	d, err := h.service.GetDoctor(c.Request.Context(), id)
	if err != nil {
		c.JSON(handler.StatusFor(err), handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(d))
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var req model.DoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	d, err := h.service.CreateDoctor(c.Request.Context(), &req)
	if err != nil {
		c.JSON(handler.StatusFor(err), handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(d))
}

func (h *Handler) UpdateDoctor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid doctor ID"))
		return
	}

	var req model.DoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	d, err := h.service.UpdateDoctor(c.Request.Context(), id, &req)
	if err != nil {
		c.JSON(handler.StatusFor(err), handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(d))
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid doctor ID"))
		return
	}

	if err := h.service.DeleteDoctor(c.Request.Context(), id); err != nil {
		c.JSON(handler.StatusFor(err), handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}
