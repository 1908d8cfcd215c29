package product

import (
	"net/http"
	"strconv"

	"designhub/internal/middleware"
	"designhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/projects/:project_id/products", h.Create)
	rg.POST("/projects/:project_id/products/:product_id/update_status", h.UpdateStatus)
}

func (h *Handler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	projectID, err := strconv.ParseInt(c.Param("project_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, []string{"Invalid product attributes"})
		return
	}

	product, err := h.service.Create(c.Request.Context(), user, projectID, req)
	if err != nil {
		switch err {
		case ErrProjectNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
		case ErrRoomNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		case ErrNotDesigner:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only designers can add products")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create product")
		}
		return
	}
	response.Success(c, http.StatusCreated, product)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	user := middleware.CurrentUser(c)

	projectID, err := strconv.ParseInt(c.Param("project_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
		return
	}
	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Product not found")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, []string{"Status is required"})
		return
	}

	product, err := h.service.UpdateStatus(c.Request.Context(), user, projectID, productID, req.Status)
	if err != nil {
		switch err {
		case ErrProjectNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
		case ErrProductNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Product not found")
		case ErrInvalidStatus:
			response.ValidationError(c, []string{"Invalid status"})
		case ErrRoleNotPermitted:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't have permission to update this product")
		case ErrValidation:
			response.ValidationError(c, []string{"Could not update product status"})
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update product status")
		}
		return
	}
	response.Success(c, http.StatusOK, product)
}
