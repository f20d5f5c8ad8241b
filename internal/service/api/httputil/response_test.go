package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/alert-relay/internal/service/api/constants"
	"github.com/darkkaiser/alert-relay/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		createError    func(string) error
		message        string
		expectedStatus int
	}{
		{"BadRequest", NewBadRequestError, constants.ErrMsgBadRequest, http.StatusBadRequest},
		{"NotFound", NewNotFoundError, constants.ErrMsgNotFoundTeam, http.StatusNotFound},
		{"UnsupportedMediaType", NewUnsupportedMediaTypeError, constants.ErrMsgUnsupportedMediaType, http.StatusUnsupportedMediaType},
		{"InternalServer", NewInternalServerError, constants.ErrMsgInternalServer, http.StatusInternalServerError},
		{"특수문자 메시지", NewBadRequestError, "특수문자: <>&\"'\n\t", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.createError(tt.message)

			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, tt.expectedStatus, he.Code)

			resp, ok := he.Message.(response.ErrorResponse)
			require.True(t, ok)
			assert.Equal(t, tt.expectedStatus, resp.ResultCode)
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}

func TestNewSuccessResponse(t *testing.T) {
	t.Parallel()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, NewSuccessResponse(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp response.SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.ResultCode)
	assert.Equal(t, "성공", resp.Message)
}
