package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponseTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newResponseTestContext()

	err := SuccessResponse(c, http.StatusCreated, "Token created successfully", map[string]string{
		"code": "ACE-ABCD-EFGH-JKLM",
	})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "Token created successfully", response.Message)
	data := response.Data.(map[string]interface{})
	assert.Equal(t, "ACE-ABCD-EFGH-JKLM", data["code"])
}

func TestErrorResponseHandler(t *testing.T) {
	c, rec := newResponseTestContext()

	err := ErrorResponseHandler(c, http.StatusForbidden, "access code has expired")

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.Equal(t, "access code has expired", response.Error)
	assert.Equal(t, http.StatusForbidden, response.Code)
}

func TestErrorHelpers_StatusAndDefaults(t *testing.T) {
	testCases := []struct {
		name        string
		fn          func(echo.Context, string) error
		wantStatus  int
		wantDefault string
	}{
		{"Bad Request", BadRequestResponse, http.StatusBadRequest, ""},
		{"Unauthorized", UnauthorizedResponse, http.StatusUnauthorized, "Unauthorized"},
		{"Forbidden", ForbiddenResponse, http.StatusForbidden, "Forbidden"},
		{"Conflict", ConflictResponse, http.StatusConflict, "Conflict"},
		{"Not Found", NotFoundResponse, http.StatusNotFound, "Resource not found"},
		{"Internal Server Error", InternalServerErrorResponse, http.StatusInternalServerError, "Internal server error"},
		{"Service Unavailable", ServiceUnavailableResponse, http.StatusServiceUnavailable, "Service unavailable"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Explicit message travels verbatim
			c, rec := newResponseTestContext()
			assert.NoError(t, tc.fn(c, "something went wrong"))
			assert.Equal(t, tc.wantStatus, rec.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, "something went wrong", response.Error)

			// Empty message falls back to the helper's default
			c, rec = newResponseTestContext()
			assert.NoError(t, tc.fn(c, ""))
			assert.Equal(t, tc.wantStatus, rec.Code)

			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, tc.wantDefault, response.Error)
		})
	}
}
