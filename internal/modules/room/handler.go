package room

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
	rg.POST("/projects/:project_id/rooms", h.Create)
}

func (h *Handler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	projectID, err := strconv.ParseInt(c.Param("project_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
		return
	}

	var req CreateRoomRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	room, created, err := h.service.CreateWithPlans(c.Request.Context(), user, projectID, req)
	if err != nil {
		switch err {
		case ErrProjectNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
		case ErrNotDesigner:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only designers can manage rooms")
		case ErrNameRequired:
			response.ValidationError(c, []string{"Room name is required"})
		case ErrDuplicateName:
			response.ValidationError(c, []string{"Name already exists in this project"})
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not create room")
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	response.Success(c, status, RoomResponse{ID: room.ID, Name: room.Name, Created: created})
}
