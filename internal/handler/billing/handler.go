package billing

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medicore/hms-api/internal/handler"
	"github.com/medicore/hms-api/internal/model"
	"github.com/medicore/hms-api/internal/service/billing"
)

type Handler struct {
	service *billing.Service
}

func NewHandler(service *billing.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	bills := r.Group("/bills")
	{
		bills.GET("", h.ListBills)
		bills.POST("", h.ComposeBill)
		bills.GET("/:id", h.GetBill)
	}
}

func (h *Handler) ListBills(c *gin.Context) {
	bills, err := h.service.ListBills(c.Request.Context())
	if err != nil {
		c.JSON(handler.StatusFor(err), handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(bills))
}

func (h *Handler) GetBill(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid bill ID"))
		return
	}

	bill, err := h.service.GetBill(c.Request.Context(), id)
	if err != nil {
		c.JSON(handler.StatusFor(err), handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(bill))
}

// ComposeBill persists the bill and renders the invoice document. A render
// failure still returns 201: the bill row is durable and the response carries
// the render error for the operator.
func (h *Handler) ComposeBill(c *gin.Context) {
	var req model.ComposeBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	composed, err := h.service.ComposeBill(c.Request.Context(), &req)
	if err != nil {
		c.JSON(handler.StatusFor(err), handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(composed))
}
