package project

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
	rg.GET("/projects", h.List)
	rg.POST("/projects", h.Create)
	rg.GET("/projects/:project_id", h.Show)
}

func (h *Handler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var filter ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid filter parameters")
		return
	}

	resp, err := h.service.List(c.Request.Context(), user, filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list projects")
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), user, req)
	if err != nil {
		switch err {
		case ErrNoFirm:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You need to be part of a firm to create a project")
		case ErrInvalid:
			response.ValidationError(c, []string{"Could not create project"})
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create project")
		}
		return
	}
	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) Show(c *gin.Context) {
	user := middleware.CurrentUser(c)

	projectID, err := strconv.ParseInt(c.Param("project_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
		return
	}

	resp, err := h.service.Show(c.Request.Context(), user, projectID)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load project")
		return
	}
	response.Success(c, http.StatusOK, resp)
}
