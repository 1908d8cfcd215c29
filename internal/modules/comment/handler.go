package comment

import (
	"net/http"
	"strconv"
	"unicode/utf8"

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

// RegisterRoutes mounts the same comment surface under each commentable
// kind; the param name tells the finder which key it is resolving.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	for _, prefix := range []string{
		"/projects/:project_id/products/:product_id",
		"/projects/:project_id/pending_products/:pending_product_id",
		"/projects/:project_id/rooms/:room_id",
	} {
		rg.GET(prefix+"/comments", h.List)
		rg.POST(prefix+"/comments", h.Create)
		rg.PATCH(prefix+"/comments/:comment_id", h.Update)
		rg.DELETE(prefix+"/comments/:comment_id", h.Delete)
	}
}

func commentableParams(c *gin.Context) CommentableParams {
	var params CommentableParams
	if id, err := strconv.ParseInt(c.Param("product_id"), 10, 64); err == nil {
		params.ProductID = &id
	}
	if id, err := strconv.ParseInt(c.Param("pending_product_id"), 10, 64); err == nil {
		params.PendingProductID = &id
	}
	if id, err := strconv.ParseInt(c.Param("room_id"), 10, 64); err == nil {
		params.RoomID = &id
	}
	return params
}

func (h *Handler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	projectID, err := strconv.ParseInt(c.Param("project_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
		return
	}

	comments, err := h.service.List(c.Request.Context(), user, projectID, commentableParams(c))
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, comments)
}

func (h *Handler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	projectID, err := strconv.ParseInt(c.Param("project_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// The struct is populated even when validation fails, so the bound
		// value tells us which rule tripped.
		if utf8.RuneCountInString(req.Comment) > maxCommentChars {
			response.ValidationError(c, []string{"Comment is too long (maximum is 2000 characters)"})
			return
		}
		response.ValidationError(c, []string{"Comment can't be blank"})
		return
	}

	dto, err := h.service.Create(c.Request.Context(), user, projectID, commentableParams(c), req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, dto)
}

func (h *Handler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)

	projectID, err := strconv.ParseInt(c.Param("project_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
		return
	}
	commentID, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Comment not found")
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, []string{"Resolved flag is required"})
		return
	}

	dto, err := h.service.UpdateResolved(c.Request.Context(), user, projectID, commentableParams(c), commentID, *req.Resolved)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, dto)
}

func (h *Handler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	projectID, err := strconv.ParseInt(c.Param("project_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
		return
	}
	commentID, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Comment not found")
		return
	}

	if err := h.service.Delete(c.Request.Context(), user, projectID, commentableParams(c), commentID); err != nil {
		h.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) renderError(c *gin.Context, err error) {
	switch err {
	case ErrProjectNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
	case ErrItemNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Item not found")
	case ErrCommentNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Comment not found")
	case ErrNotAuthor:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only delete your own comments")
	case ErrValidation:
		response.ValidationError(c, []string{"Comment can't be blank"})
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
