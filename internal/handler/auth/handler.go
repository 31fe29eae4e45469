package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medicore/hms-api/internal/handler"
	"github.com/medicore/hms-api/internal/model"
	"github.com/medicore/hms-api/internal/service/auth"
)

type Handler struct {
	service *auth.Service
}

func NewHandler(service *auth.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/auth/login", h.Login)
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	tokens, err := h.service.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(handler.StatusFor(err), handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(tokens))
}
