package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/alert-relay/internal/config"
	"github.com/darkkaiser/alert-relay/internal/dispatch"
	"github.com/darkkaiser/alert-relay/internal/msgtemplate"
	"github.com/darkkaiser/alert-relay/internal/pkg/version"
	"github.com/darkkaiser/alert-relay/internal/relay"
	"github.com/darkkaiser/alert-relay/internal/routing"
	"github.com/darkkaiser/alert-relay/internal/service"
	"github.com/darkkaiser/alert-relay/internal/service/api"
	applog "github.com/darkkaiser/alert-relay/pkg/log"
)

// @title Alert Relay API
// @version 1.0.0
// @description Grafana/Alertmanager 웹훅 알림을 팀별 SMS 수신 번호와 웹훅 공급자에게 전달하는 서버의 REST API입니다.
// @description
// @description ## 주요 기능
// @description - POST /alert/{team}: 알림 수신 및 발송
// @description - /api/v1: 팀별 수신 번호, 공급자, 메시지 템플릿 관리

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser

// @license.name MIT

// @BasePath /

const component = "main"

const banner = `
    _    _           _     ____      _
   / \  | | ___ _ __| |_  |  _ \ ___| | __ _ _   _
  / _ \ | |/ _ \ '__| __| | |_) / _ \ |/ _' | | | |
 / ___ \| |  __/ |  | |_  |  _ <  __/ | (_| | |_| |
/_/   \_\_|\___|_|   \__| |_| \_\___|_|\__,_|\__, |
                                             |___/  %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`

// app 실행에 필요한 서비스와 정리 대상 자원을 묶습니다.
type app struct {
	sender   *dispatch.HTTPSender
	services []service.Service
}

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.LoadWithFile(configFilename(os.Args[1:]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	appLogCloser, err := applog.Setup(newLogOptions(appConfig.Debug))
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()

	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields(component, applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, w := range appConfig.VerifyRecommendations() {
		applog.WithComponent(component).Warn(w)
	}

	a := newApp(appConfig, buildInfo)
	defer a.sender.CloseIdleConnections()

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	serviceStopWG := &sync.WaitGroup{}

	for _, s := range a.services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel()
			serviceStopWG.Wait()

			applog.WithComponent(component).Fatal("서비스 초기화 실패로 프로그램을 종료합니다")
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent(component).Info("서버 가동 완료")

	<-termC

	applog.WithComponent(component).Info("종료 신호를 수신하였습니다")
	cancel()
	serviceStopWG.Wait()
}

// configFilename 첫 번째 실행 인자를 설정 파일 경로로 사용합니다. 없으면 config.DefaultFilename입니다.
func configFilename(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return config.DefaultFilename
}

func newLogOptions(debug bool) applog.Options {
	if debug {
		return applog.NewDevelopmentOptions(config.AppName)
	}
	return applog.NewProductionOptions(config.AppName)
}

// newApp 저장소, 발송기, 파이프라인, API 서비스를 생성하여 연결합니다.
func newApp(appConfig *config.AppConfig, buildInfo version.Info) *app {
	routes := routing.NewFileStore(appConfig.Storage.NumbersFile)
	templates := msgtemplate.NewFileStore(appConfig.Storage.TemplateFile)

	sender := dispatch.NewHTTPSender()
	dispatcher := dispatch.New(
		dispatch.WithSender(sender),
		dispatch.WithSendTimeout(appConfig.Dispatch.SendTimeout),
		dispatch.WithProviderInterval(appConfig.Dispatch.ProviderInterval),
	)

	pipeline := relay.New(routes, templates, dispatcher)
	apiService := api.NewService(appConfig, pipeline, routes, templates, buildInfo)

	return &app{
		sender:   sender,
		services: []service.Service{apiService},
	}
}
