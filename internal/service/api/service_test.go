package api

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/alert-relay/internal/config"
	"github.com/darkkaiser/alert-relay/internal/msgtemplate"
	"github.com/darkkaiser/alert-relay/internal/pkg/version"
	"github.com/darkkaiser/alert-relay/internal/routing"
	"github.com/darkkaiser/alert-relay/internal/service/api/constants"
	"github.com/darkkaiser/alert-relay/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(port int) *config.AppConfig {
	appConfig := &config.AppConfig{Debug: true}
	appConfig.RelayAPI.WS.ListenPort = port
	appConfig.RelayAPI.WS.WriteTimeout = time.Minute
	appConfig.RelayAPI.CORS.AllowOrigins = []string{"*"}
	return appConfig
}

func newTestService(t *testing.T, appConfig *config.AppConfig) *Service {
	t.Helper()

	dir := t.TempDir()
	return NewService(appConfig, &stubRelayer{sentTo: []string{}},
		routing.NewFileStore(filepath.Join(dir, "numbers.txt")),
		msgtemplate.NewFileStore(filepath.Join(dir, "template.txt")),
		version.Info{Version: "1.0.0"},
	)
}

// waitGroupDone wg가 timeout 안에 끝나면 true를 반환합니다.
func waitGroupDone(wg *sync.WaitGroup, timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (s *Service) isRunning() bool {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()
	return s.running
}

func TestNewService(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	appConfig := newTestConfig(8080)
	relayer := &stubRelayer{}
	routes := routing.NewFileStore(filepath.Join(dir, "numbers.txt"))
	templates := msgtemplate.NewFileStore(filepath.Join(dir, "template.txt"))
	buildInfo := version.Info{Version: "1.2.3"}

	s := NewService(appConfig, relayer, routes, templates, buildInfo)

	assert.Equal(t, appConfig, s.appConfig)
	assert.Equal(t, buildInfo, s.buildInfo)
	assert.False(t, s.isRunning())

	assert.PanicsWithValue(t, constants.PanicMsgAppConfigRequired, func() { NewService(nil, relayer, routes, templates, buildInfo) })
	assert.PanicsWithValue(t, constants.PanicMsgPipelineRequired, func() { NewService(appConfig, nil, routes, templates, buildInfo) })
	assert.PanicsWithValue(t, constants.PanicMsgRoutingStoreRequired, func() { NewService(appConfig, relayer, nil, templates, buildInfo) })
	assert.PanicsWithValue(t, constants.PanicMsgTemplateStoreRequired, func() { NewService(appConfig, relayer, routes, nil, buildInfo) })
}

func TestService_Start_NotInitialized(t *testing.T) {
	t.Parallel()

	s := &Service{appConfig: newTestConfig(0)}

	wg := &sync.WaitGroup{}
	wg.Add(1)
	err := s.Start(context.Background(), wg)

	require.ErrorIs(t, err, ErrRelayerNotInitialized)
	assert.True(t, waitGroupDone(wg, time.Second))
	assert.False(t, s.isRunning())
}

func TestService_handleServerError(t *testing.T) {
	s := newTestService(t, newTestConfig(8080))
	buf := setupTestLogger(t)

	s.handleServerError(nil)
	assert.Empty(t, buf.String())

	s.handleServerError(http.ErrServerClosed)
	assert.Contains(t, buf.String(), constants.LogMsgServiceHTTPServerStopped)
	assert.NotContains(t, buf.String(), `"level":"error"`)

	buf.Reset()
	s.handleServerError(assert.AnError)
	assert.Contains(t, buf.String(), constants.LogMsgServiceHTTPServerFatalError)
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestService_Lifecycle(t *testing.T) {
	port := testutil.FreePort(t)
	s := newTestService(t, newTestConfig(port))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))
	require.NoError(t, testutil.WaitForServer(port, 2*time.Second))
	assert.True(t, s.isRunning())

	resp, err := http.Post(fmt.Sprintf("http://127.0.0.1:%d/alert/devops", port), "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	require.True(t, waitGroupDone(wg, constants.ShutdownTimeout+time.Second), "Shutdown 타임아웃")
	assert.False(t, s.isRunning())
}

// TestService_HealthHasNoSideEffects 헬스체크가 아직 없는 라우팅 파일을 만들지 않아야 합니다.
func TestService_HealthHasNoSideEffects(t *testing.T) {
	dir := t.TempDir()
	numbersFile := filepath.Join(dir, "numbers.txt")

	s := NewService(newTestConfig(8080), &stubRelayer{sentTo: []string{}},
		routing.NewFileStore(numbersFile),
		msgtemplate.NewFileStore(filepath.Join(dir, "template.txt")),
		version.Info{Version: "1.0.0"},
	)
	e := s.setupServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), constants.HealthStatusHealthy)
	assert.NoFileExists(t, numbersFile)
}

func TestService_DuplicateStart(t *testing.T) {
	port := testutil.FreePort(t)
	s := newTestService(t, newTestConfig(port))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))
	require.NoError(t, testutil.WaitForServer(port, 2*time.Second))

	// 이미 실행 중이면 Start 안에서 Done이 호출된다.
	wg.Add(1)
	assert.NoError(t, s.Start(ctx, wg))
	assert.True(t, s.isRunning())

	cancel()
	require.True(t, waitGroupDone(wg, constants.ShutdownTimeout+time.Second))
}

func TestService_ConcurrentStart(t *testing.T) {
	port := testutil.FreePort(t)
	s := newTestService(t, newTestConfig(port))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg := &sync.WaitGroup{}

	const goroutines = 10
	errs := make(chan error, goroutines)

	var startWG sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		startWG.Add(1)
		go func() {
			defer startWG.Done()
			errs <- s.Start(ctx, wg)
		}()
	}

	startWG.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	require.NoError(t, testutil.WaitForServer(port, 5*time.Second))

	cancel()
	require.True(t, waitGroupDone(wg, 10*time.Second), "Shutdown 타임아웃")
}

func TestService_PortInUse(t *testing.T) {
	port := testutil.FreePort(t)

	first := newTestService(t, newTestConfig(port))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, first.Start(ctx, wg))
	require.NoError(t, testutil.WaitForServer(port, 2*time.Second))

	// 같은 포트로 시작한 두 번째 서비스는 바인딩에 실패하고 스스로 정리된다.
	second := newTestService(t, newTestConfig(port))
	secondWG := &sync.WaitGroup{}
	secondWG.Add(1)
	require.NoError(t, second.Start(ctx, secondWG))

	require.True(t, waitGroupDone(secondWG, 2*time.Second))
	assert.False(t, second.isRunning())
	assert.True(t, first.isRunning())

	cancel()
	require.True(t, waitGroupDone(wg, constants.ShutdownTimeout+time.Second))
}

func TestService_StartTLS(t *testing.T) {
	certFile, keyFile := testutil.SelfSignedCert(t)
	port := testutil.FreePort(t)

	appConfig := newTestConfig(port)
	appConfig.RelayAPI.WS.TLSServer = true
	appConfig.RelayAPI.WS.TLSCertFile = certFile
	appConfig.RelayAPI.WS.TLSKeyFile = keyFile

	s := newTestService(t, appConfig)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))
	require.NoError(t, testutil.WaitForServer(port, 2*time.Second))

	transport := &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}} // #nosec G402 -- 테스트용 자체 서명 인증서
	client := &http.Client{Transport: transport, Timeout: 2 * time.Second}

	resp, err := client.Get(fmt.Sprintf("https://127.0.0.1:%d/health", port))
	require.NoError(t, err)
	resp.Body.Close()
	transport.CloseIdleConnections()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Strict-Transport-Security"), "max-age=")

	cancel()
	require.True(t, waitGroupDone(wg, constants.ShutdownTimeout+time.Second))
}

func TestService_StartTLS_InvalidCert(t *testing.T) {
	port := testutil.FreePort(t)

	appConfig := newTestConfig(port)
	appConfig.RelayAPI.WS.TLSServer = true
	appConfig.RelayAPI.WS.TLSCertFile = filepath.Join(t.TempDir(), "missing-cert.pem")
	appConfig.RelayAPI.WS.TLSKeyFile = filepath.Join(t.TempDir(), "missing-key.pem")

	s := newTestService(t, appConfig)

	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, s.Start(context.Background(), wg))

	require.True(t, waitGroupDone(wg, 2*time.Second), "인증서 로드 실패 시 서비스가 스스로 종료되어야 합니다")
	assert.False(t, s.isRunning())
}
