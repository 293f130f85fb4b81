package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(t *testing.T, handler gin.HandlerFunc, headers map[string]string) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/test", handler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestSuccessEnvelope(t *testing.T) {
	w, body := perform(t, func(c *gin.Context) {
		Success(c, http.StatusOK, gin.H{"hello": "world"})
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, body.Error)
	assert.NotEmpty(t, body.Metadata.RequestID)
	assert.NotEmpty(t, body.Metadata.Timestamp)

	data, ok := body.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "world", data["hello"])
}

func TestFailEnvelopeCarriesCodeAndMessage(t *testing.T) {
	w, body := perform(t, func(c *gin.Context) {
		Fail(c, http.StatusConflict, ErrSeatUnavailable)
	}, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, ErrSeatUnavailable, body.Error.Code)
	assert.Equal(t, GetMessage(ErrSeatUnavailable), body.Error.Message)
	assert.Nil(t, body.Data)
}

func TestFailWithFieldsIncludesFieldDetails(t *testing.T) {
	_, body := perform(t, func(c *gin.Context) {
		FailWithFields(c, http.StatusBadRequest, ErrValidation, map[string]string{
			"student_no": "required",
		})
	}, nil)

	require.NotNil(t, body.Error)
	assert.Equal(t, "required", body.Error.Fields["student_no"])
}

func TestRequestIDPropagatesFromHeader(t *testing.T) {
	w, body := perform(t, func(c *gin.Context) {
		Success(c, http.StatusOK, nil)
	}, map[string]string{"X-Request-ID": "trace-me-123"})

	assert.Equal(t, "trace-me-123", body.Metadata.RequestID)
	assert.Equal(t, "trace-me-123", w.Header().Get("X-Request-ID"))
}

func TestSuccessWithPagination(t *testing.T) {
	_, body := perform(t, func(c *gin.Context) {
		SuccessWithPagination(c, http.StatusOK, []string{"a", "b"}, &Pagination{
			Page: 2, PerPage: 10, TotalItems: 35, TotalPages: 4,
		})
	}, nil)

	require.NotNil(t, body.Pagination)
	assert.Equal(t, 2, body.Pagination.Page)
	assert.Equal(t, 4, body.Pagination.TotalPages)
}
