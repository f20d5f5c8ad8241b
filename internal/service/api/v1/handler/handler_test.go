package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/darkkaiser/alert-relay/internal/msgtemplate"
	apperrors "github.com/darkkaiser/alert-relay/internal/pkg/errors"
	"github.com/darkkaiser/alert-relay/internal/routing"
	"github.com/darkkaiser/alert-relay/internal/service/api/constants"
	"github.com/darkkaiser/alert-relay/internal/service/api/httputil"
	apiresponse "github.com/darkkaiser/alert-relay/internal/service/api/model/response"
	"github.com/darkkaiser/alert-relay/internal/service/api/v1/model/response"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	e         *echo.Echo
	routes    *routing.FileStore
	templates *msgtemplate.FileStore
	dir       string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	env := &testEnv{
		e:         echo.New(),
		routes:    routing.NewFileStore(filepath.Join(dir, "numbers.txt")),
		templates: msgtemplate.NewFileStore(filepath.Join(dir, "template.txt")),
		dir:       dir,
	}
	env.e.HTTPErrorHandler = httputil.ErrorHandler
	register(env.e, New(env.routes, env.templates))

	return env
}

func register(e *echo.Echo, h *Handler) {
	e.GET("/api/v1/routing", h.GetRoutingHandler)
	e.POST("/api/v1/teams/:team/numbers", h.AddNumberHandler)
	e.DELETE("/api/v1/teams/:team/numbers/:number", h.RemoveNumberHandler)
	e.POST("/api/v1/providers", h.AddProviderHandler)
	e.DELETE("/api/v1/providers/:index", h.RemoveProviderHandler)
	e.PUT("/api/v1/template", h.UpdateTemplateHandler)
}

func (env *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) table(t *testing.T) *routing.Table {
	t.Helper()

	table, err := env.routes.Load(context.Background())
	require.NoError(t, err)
	return table
}

func assertErrorBody(t *testing.T, rec *httptest.ResponseRecorder, code int, msg string) {
	t.Helper()

	assert.Equal(t, code, rec.Code)

	var resp apiresponse.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, code, resp.ResultCode)
	if msg != "" {
		assert.Equal(t, msg, resp.Message)
	}
}

// failingRoutes 모든 호출이 실패하는 라우팅 저장소
type failingRoutes struct{}

func (failingRoutes) Load(context.Context) (*routing.Table, error) {
	return nil, apperrors.New(apperrors.System, "disk error")
}
func (failingRoutes) Save(context.Context, *routing.Table) error {
	return apperrors.New(apperrors.System, "disk error")
}
func (failingRoutes) Update(context.Context, func(*routing.Table) error) error {
	return apperrors.New(apperrors.System, "disk error")
}
func (failingRoutes) Check(context.Context) error {
	return apperrors.New(apperrors.System, "disk error")
}

func TestNew_PanicsOnNil(t *testing.T) {
	t.Parallel()

	templates := msgtemplate.NewFileStore(filepath.Join(t.TempDir(), "t.txt"))
	routes := routing.NewFileStore(filepath.Join(t.TempDir(), "n.txt"))

	assert.PanicsWithValue(t, constants.PanicMsgRoutingStoreRequired, func() { New(nil, templates) })
	assert.PanicsWithValue(t, constants.PanicMsgTemplateStoreRequired, func() { New(routes, nil) })
	assert.NotNil(t, New(routes, templates))
}

func TestGetRoutingHandler(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.routes.Update(ctx, func(tb *routing.Table) error {
		tb.AddProvider(routing.NewBareProvider("https://sms.example.com/send?apikey=SECRET123"))
		tb.AddProvider(routing.NewStructuredProvider("https://chat.example.com/hooks/abc", map[string]string{
			"Authorization": "Bearer secret",
			"X-Env":         "prod",
		}))
		return tb.AddNumber(routing.TeamDevOps, routing.Destination{Number: "+15550001", Description: "on-call"})
	}))

	t.Run("기본 템플릿", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/api/v1/routing", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp response.RoutingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.Len(t, resp.Teams, len(routing.Teams))
		assert.Equal(t, []response.DestinationView{{Number: "+15550001", Description: "on-call"}}, resp.Teams["devops"])
		assert.Equal(t, []response.DestinationView{{Number: "+15550001", Description: "on-call"}}, resp.Teams["all"])
		assert.Empty(t, resp.Teams["web"])

		require.Len(t, resp.Providers, 2)
		assert.Equal(t, 0, resp.Providers[0].Index)
		assert.Equal(t, "sms", resp.Providers[0].Channel)
		assert.NotContains(t, resp.Providers[0].URL, "SECRET123")
		assert.Nil(t, resp.Providers[0].Headers)

		assert.Equal(t, "webhook", resp.Providers[1].Channel)
		assert.Equal(t, "*****", resp.Providers[1].Headers["Authorization"])
		assert.Equal(t, "prod", resp.Providers[1].Headers["X-Env"])

		assert.Equal(t, msgtemplate.DefaultTemplate, resp.Template)
		assert.True(t, resp.DefaultTemplate)
	})

	t.Run("저장된 템플릿", func(t *testing.T) {
		require.NoError(t, env.templates.Set(ctx, "{alertname}: {summary}"))
		defer func() { require.NoError(t, env.templates.Set(ctx, "")) }()

		rec := env.do(http.MethodGet, "/api/v1/routing", "")

		var resp response.RoutingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "{alertname}: {summary}", resp.Template)
		assert.False(t, resp.DefaultTemplate)
	})
}

func TestAddNumberHandler(t *testing.T) {
	t.Parallel()

	t.Run("추가 후 all 팀에도 반영", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		rec := env.do(http.MethodPost, "/api/v1/teams/web/numbers", `{"number":" +15550002 ","description":"web on-call"}`)
		assert.Equal(t, http.StatusOK, rec.Code)

		table := env.table(t)
		assert.Equal(t, []routing.Destination{{Number: "+15550002", Description: "web on-call"}}, table.Teams[routing.TeamWeb])
		assert.Equal(t, []routing.Destination{{Number: "+15550002", Description: "web on-call"}}, table.Teams[routing.TeamAll])
	})

	t.Run("중복 번호는 무시", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		require.Equal(t, http.StatusOK, env.do(http.MethodPost, "/api/v1/teams/noc/numbers", `{"number":"+15550003"}`).Code)
		require.Equal(t, http.StatusOK, env.do(http.MethodPost, "/api/v1/teams/noc/numbers", `{"number":"+15550003","description":"other"}`).Code)

		table := env.table(t)
		assert.Len(t, table.Teams[routing.TeamNOC], 1)
		assert.Empty(t, table.Teams[routing.TeamNOC][0].Description)
	})

	t.Run("등록되지 않은 팀", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		rec := env.do(http.MethodPost, "/api/v1/teams/marketing/numbers", `{"number":"+15550004"}`)
		assertErrorBody(t, rec, http.StatusNotFound, constants.ErrMsgNotFoundTeam)
	})

	t.Run("빈 번호", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		rec := env.do(http.MethodPost, "/api/v1/teams/web/numbers", `{"number":""}`)
		assertErrorBody(t, rec, http.StatusBadRequest, "번호는 필수입니다")
	})

	t.Run("공백뿐인 번호", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		rec := env.do(http.MethodPost, "/api/v1/teams/web/numbers", `{"number":"   "}`)
		assertErrorBody(t, rec, http.StatusBadRequest, "번호가 비어있습니다")
	})

	t.Run("잘못된 JSON", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		rec := env.do(http.MethodPost, "/api/v1/teams/web/numbers", `{"number":`)
		assertErrorBody(t, rec, http.StatusBadRequest, constants.ErrMsgBadRequestInvalidBody)
	})

	t.Run("저장소 오류", func(t *testing.T) {
		t.Parallel()

		e := echo.New()
		e.HTTPErrorHandler = httputil.ErrorHandler
		register(e, New(failingRoutes{}, msgtemplate.NewFileStore(filepath.Join(t.TempDir(), "t.txt"))))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/teams/web/numbers", strings.NewReader(`{"number":"1"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assertErrorBody(t, rec, http.StatusInternalServerError, constants.ErrMsgInternalServerStore)
	})
}

func TestRemoveNumberHandler(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	require.Equal(t, http.StatusOK, env.do(http.MethodPost, "/api/v1/teams/cloud/numbers", `{"number":"+15550005"}`).Code)

	t.Run("해당 팀에서만 삭제", func(t *testing.T) {
		rec := env.do(http.MethodDelete, "/api/v1/teams/cloud/numbers/%2B15550005", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		table := env.table(t)
		assert.Empty(t, table.Teams[routing.TeamCloud])
		assert.Len(t, table.Teams[routing.TeamAll], 1)
	})

	t.Run("등록되지 않은 번호", func(t *testing.T) {
		rec := env.do(http.MethodDelete, "/api/v1/teams/cloud/numbers/999", "")
		assertErrorBody(t, rec, http.StatusNotFound, constants.ErrMsgNotFoundNumber)
	})

	t.Run("등록되지 않은 팀", func(t *testing.T) {
		rec := env.do(http.MethodDelete, "/api/v1/teams/sales/numbers/999", "")
		assertErrorBody(t, rec, http.StatusNotFound, constants.ErrMsgNotFoundTeam)
	})
}

func TestAddProviderHandler(t *testing.T) {
	t.Parallel()

	t.Run("bare와 structured", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		require.Equal(t, http.StatusOK, env.do(http.MethodPost, "/api/v1/providers", `{"url":"https://sms.example.com/send"}`).Code)
		require.Equal(t, http.StatusOK, env.do(http.MethodPost, "/api/v1/providers", `{"url":"https://chat.example.com/hooks/x","headers":{"X-Token":"t"}}`).Code)

		table := env.table(t)
		require.Len(t, table.Providers, 2)
		assert.False(t, table.Providers[0].IsStructured())
		assert.True(t, table.Providers[1].IsStructured())
		assert.Equal(t, map[string]string{"X-Token": "t"}, table.Providers[1].Headers())
	})

	t.Run("빈 headers는 bare", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		require.Equal(t, http.StatusOK, env.do(http.MethodPost, "/api/v1/providers", `{"url":"https://sms.example.com/send","headers":{}}`).Code)

		table := env.table(t)
		require.Len(t, table.Providers, 1)
		assert.False(t, table.Providers[0].IsStructured())
	})

	t.Run("중복은 무시", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		for range 2 {
			require.Equal(t, http.StatusOK, env.do(http.MethodPost, "/api/v1/providers", `{"url":"https://sms.example.com/send"}`).Code)
		}
		assert.Len(t, env.table(t).Providers, 1)
	})

	t.Run("잘못된 URL", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		assertErrorBody(t, env.do(http.MethodPost, "/api/v1/providers", `{"url":"ftp://files.example.com"}`), http.StatusBadRequest, "")
		assertErrorBody(t, env.do(http.MethodPost, "/api/v1/providers", `{}`), http.StatusBadRequest, "URL는 필수입니다")
		assert.Empty(t, env.table(t).Providers)
	})
}

func TestRemoveProviderHandler(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	require.Equal(t, http.StatusOK, env.do(http.MethodPost, "/api/v1/providers", `{"url":"https://a.example.com/send"}`).Code)
	require.Equal(t, http.StatusOK, env.do(http.MethodPost, "/api/v1/providers", `{"url":"https://b.example.com/send"}`).Code)

	t.Run("정수가 아닌 위치", func(t *testing.T) {
		assertErrorBody(t, env.do(http.MethodDelete, "/api/v1/providers/abc", ""), http.StatusBadRequest, constants.ErrMsgBadRequestIndex)
		assertErrorBody(t, env.do(http.MethodDelete, "/api/v1/providers/-1", ""), http.StatusBadRequest, constants.ErrMsgBadRequestIndex)
	})

	t.Run("범위를 벗어난 위치", func(t *testing.T) {
		assertErrorBody(t, env.do(http.MethodDelete, "/api/v1/providers/5", ""), http.StatusNotFound, constants.ErrMsgNotFoundProvider)
	})

	t.Run("위치로 삭제", func(t *testing.T) {
		require.Equal(t, http.StatusOK, env.do(http.MethodDelete, "/api/v1/providers/0", "").Code)

		table := env.table(t)
		require.Len(t, table.Providers, 1)
		assert.Equal(t, "https://b.example.com/send", table.Providers[0].URL())
	})
}

func TestUpdateTemplateHandler(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	templatePath := filepath.Join(env.dir, "template.txt")

	t.Run("저장", func(t *testing.T) {
		rec := env.do(http.MethodPut, "/api/v1/template", `{"template":"[{status}] {alertname}"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		got, err := env.templates.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "[{status}] {alertname}", got)
	})

	t.Run("알 수 없는 placeholder", func(t *testing.T) {
		rec := env.do(http.MethodPut, "/api/v1/template", `{"template":"{status} {hostname}"}`)
		assertErrorBody(t, rec, http.StatusBadRequest, "알 수 없는 placeholder: {hostname}")

		got, err := env.templates.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "[{status}] {alertname}", got)
	})

	t.Run("빈 템플릿은 삭제", func(t *testing.T) {
		require.Equal(t, http.StatusOK, env.do(http.MethodPut, "/api/v1/template", `{"template":""}`).Code)

		_, err := os.Stat(templatePath)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}
