package comment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designhub/internal/domain"
)

func newRouter(f *fixture, user *domain.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("current_user", user) })
	NewHandler(f.service).RegisterRoutes(&r.RouterGroup)
	return r
}

func postComment(t *testing.T, r *gin.Engine, path, comment string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]string{"comment": comment})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp.Error.Message
}

func TestCreateHandler_ValidationMessages(t *testing.T) {
	f := newFixture(t)
	r := newRouter(f, f.client)
	path := fmt.Sprintf("/projects/%d/rooms/%d/comments", f.project.ID, f.room.ID)

	w := postComment(t, r, path, strings.Repeat("a", maxCommentChars+1))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Comment is too long (maximum is 2000 characters)", errorMessage(t, w))

	w = postComment(t, r, path, "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Comment can't be blank", errorMessage(t, w))

	// Exactly at the bound still goes through.
	w = postComment(t, r, path, strings.Repeat("a", maxCommentChars))
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}
