package api

import (
	"github.com/darkkaiser/alert-relay/internal/service/api/handler/alert"
	"github.com/darkkaiser/alert-relay/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes API 서비스의 전역 라우트를 등록합니다.
//
//   - 알림 수신: POST /alert/:team
//   - 시스템 엔드포인트: /health, /version
//   - API 문서: /swagger/*
//
// 알림 수신 엔드포인트는 Content-Type을 검사하지 않는다. Grafana와 Alertmanager 외에
// 스크립트에서 Content-Type 없이 보내는 요청도 본문만 JSON이면 처리한다.
func RegisterRoutes(e *echo.Echo, systemHandler *system.Handler, alertHandler *alert.Handler) {
	registerAlertRoutes(e, alertHandler)
	registerSystemRoutes(e, systemHandler)
	registerSwaggerRoutes(e)
}

func registerAlertRoutes(e *echo.Echo, h *alert.Handler) {
	e.POST("/alert/:team", h.ReceiveAlertHandler)
}

func registerSystemRoutes(e *echo.Echo, h *system.Handler) {
	e.GET("/health", h.HealthCheckHandler)
	e.GET("/version", h.VersionHandler)
}

func registerSwaggerRoutes(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL("/swagger/doc.json"),
		echoSwagger.DeepLinking(true),
		// 문서 로드 시 태그 목록만 펼쳐서 표시 ("list", "full", "none")
		echoSwagger.DocExpansion("list"),
	))
}
