package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(h gin.HandlerFunc) (*httptest.ResponseRecorder, Response) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	h(c)
	var body Response
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestSuccess(t *testing.T) {
	w, body := run(func(c *gin.Context) { Success(c, gin.H{"ok": true}) })
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, CodeSuccess, body.Code)
	require.IsType(t, map[string]interface{}{}, body.Data)
}

func TestErrors(t *testing.T) {
	w, body := run(func(c *gin.Context) { BadRequest(c, "bad emotion") })
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "bad emotion", body.Message)
	assert.Nil(t, body.Data)

	w, body = run(func(c *gin.Context) { InternalError(c, errors.New("db down")) })
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", body.Message)
}
