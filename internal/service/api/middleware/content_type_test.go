package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestValidateContentType(t *testing.T) {
	captureLogs(t)

	tests := []struct {
		name               string
		requestContentType string
		hasBody            bool
		expectedStatus     int
	}{
		{"정상 Content-Type", echo.MIMEApplicationJSON, true, http.StatusOK},
		{"charset 포함", "application/json; charset=utf-8", true, http.StatusOK},
		{"대소문자 혼용", "Application/JSON", true, http.StatusOK},
		{"본문 없음", "", false, http.StatusOK},
		{"Content-Type 누락", "", true, http.StatusUnsupportedMediaType},
		{"다른 미디어 타입", echo.MIMETextPlain, true, http.StatusUnsupportedMediaType},
		{"form 인코딩", echo.MIMEApplicationForm, true, http.StatusUnsupportedMediaType},
		{"접두사만 일치", "application/jsonx", true, http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.HTTPErrorHandler = func(err error, c echo.Context) {
				he := err.(*echo.HTTPError)
				_ = c.NoContent(he.Code)
			}
			e.POST("/", func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			}, ValidateContentType(echo.MIMEApplicationJSON))

			var req *http.Request
			if tt.hasBody {
				req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"number":"+1001"}`))
			} else {
				req = httptest.NewRequest(http.MethodPost, "/", nil)
			}
			if tt.requestContentType != "" {
				req.Header.Set(echo.HeaderContentType, tt.requestContentType)
			}

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
