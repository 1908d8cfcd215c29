package pendingproduct

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
	rg.POST("/projects/:project_id/pending_products", h.Create)
	rg.POST("/projects/:project_id/pending_products/:pending_product_id/select_option", h.SelectOption)
}

func (h *Handler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	projectID, err := strconv.ParseInt(c.Param("project_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
		return
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, []string{"Invalid pending product attributes"})
		return
	}

	pp, err := h.service.Create(c.Request.Context(), user, projectID, req)
	if err != nil {
		switch err {
		case ErrProjectNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
		case ErrNotDesigner:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only designers can add pending products")
		case ErrValidation:
			response.ValidationError(c, []string{"Could not add pending product"})
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add pending product")
		}
		return
	}
	response.Success(c, http.StatusCreated, pp)
}

func (h *Handler) SelectOption(c *gin.Context) {
	user := middleware.CurrentUser(c)

	projectID, err := strconv.ParseInt(c.Param("project_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
		return
	}
	pendingProductID, err := strconv.ParseInt(c.Param("pending_product_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Pending product not found")
		return
	}
	optionID, err := strconv.ParseInt(c.Query("option_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Option not found")
		return
	}

	product, err := h.service.SelectOption(c.Request.Context(), user, projectID, pendingProductID, optionID)
	if err != nil {
		switch err {
		case ErrProjectNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Pending product not found")
		case ErrOptionNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Option not found")
		case ErrValidation:
			response.ValidationError(c, []string{"Could not select option"})
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to select option")
		}
		return
	}
	response.Success(c, http.StatusOK, product)
}
