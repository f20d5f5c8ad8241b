package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/darkkaiser/alert-relay/docs"
	"github.com/darkkaiser/alert-relay/internal/config"
	"github.com/darkkaiser/alert-relay/internal/msgtemplate"
	"github.com/darkkaiser/alert-relay/internal/pkg/version"
	"github.com/darkkaiser/alert-relay/internal/routing"
	"github.com/darkkaiser/alert-relay/internal/service"
	"github.com/darkkaiser/alert-relay/internal/service/api/constants"
	"github.com/darkkaiser/alert-relay/internal/service/api/handler/alert"
	"github.com/darkkaiser/alert-relay/internal/service/api/handler/system"
	v1 "github.com/darkkaiser/alert-relay/internal/service/api/v1"
	v1handler "github.com/darkkaiser/alert-relay/internal/service/api/v1/handler"
	applog "github.com/darkkaiser/alert-relay/pkg/log"
	"github.com/labstack/echo/v4"
)

// Service 알림 수신 및 관리 API 서버의 생명주기를 관리합니다.
//
// Start로 시작하며 serviceStopCtx가 취소되면 Graceful Shutdown 후 종료됩니다.
type Service struct {
	appConfig *config.AppConfig

	relayer   alert.Relayer
	routes    routing.Store
	templates msgtemplate.Store

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

var _ service.Service = (*Service)(nil)

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, relayer alert.Relayer, routes routing.Store, templates msgtemplate.Store, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if relayer == nil {
		panic(constants.PanicMsgPipelineRequired)
	}
	if routes == nil {
		panic(constants.PanicMsgRoutingStoreRequired)
	}
	if templates == nil {
		panic(constants.PanicMsgTemplateStoreRequired)
	}

	return &Service{
		appConfig: appConfig,

		relayer:   relayer,
		routes:    routes,
		templates: templates,

		buildInfo: buildInfo,
	}
}

// Start API 서비스를 시작합니다. 서버는 고루틴에서 실행되며 이 함수는 즉시 반환됩니다.
//
// 이미 실행 중이면 경고만 남기고 serviceStopWG.Done()을 호출한 뒤 nil을 반환합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.relayer == nil {
		defer serviceStopWG.Done()
		return ErrRelayerNotInitialized
	}

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer 핸들러를 만들고 미들웨어와 라우트가 등록된 Echo 인스턴스를 반환합니다.
func (s *Service) setupServer() *echo.Echo {
	systemHandler := system.New(s.buildInfo,
		system.DependencyCheck{
			Name: constants.DependencyRoutingStore,
			Check: s.routes.Check,
		},
		system.DependencyCheck{
			Name: constants.DependencyTemplateStore,
			Check: func(ctx context.Context) error {
				_, err := s.templates.Get(ctx)
				return err
			},
		},
	)
	alertHandler := alert.New(s.relayer)
	v1Handler := v1handler.New(s.routes, s.templates)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:        s.appConfig.Debug,
		AllowOrigins: s.appConfig.RelayAPI.CORS.AllowOrigins,
		WriteTimeout: s.appConfig.RelayAPI.WS.WriteTimeout,
		EnableHSTS:   s.appConfig.RelayAPI.WS.TLSServer,
	})

	RegisterRoutes(e, systemHandler, alertHandler)
	v1.RegisterRoutes(e, v1Handler)

	return e
}

// startHTTPServer HTTP/HTTPS 서버를 실행합니다. 서버가 종료되면 done을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	ws := s.appConfig.RelayAPI.WS
	address := fmt.Sprintf(":%d", ws.ListenPort)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": ws.ListenPort,
		"tls":  ws.TLSServer,
	}).Info(constants.LogMsgServiceHTTPServerStarting)

	var err error
	if ws.TLSServer {
		err = e.StartTLS(address, ws.TLSCertFile, ws.TLSKeyFile)
	} else {
		err = e.Start(address)
	}

	s.handleServerError(err)
}

// handleServerError 서버 종료 사유를 기록합니다. http.ErrServerClosed는 정상 종료입니다.
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.RelayAPI.WS.ListenPort,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)
}

// waitForShutdown 종료 신호 또는 서버의 조기 종료를 기다린 뒤 정리합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)

	case <-httpServerDone:
		// 포트 바인딩 실패 등으로 서버가 이미 종료되었다.
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)
		s.cleanup()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	// 진행 중인 알림 발송은 ShutdownTimeout 안에 끝나지 않으면 연결이 끊긴다.
	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
