// Package system 헬스체크, 버전 정보 등 시스템 수준의 엔드포인트 핸들러를 제공합니다.
package system

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/darkkaiser/alert-relay/internal/pkg/version"
	"github.com/darkkaiser/alert-relay/internal/service/api/constants"
	"github.com/darkkaiser/alert-relay/internal/service/api/model/system"
	applog "github.com/darkkaiser/alert-relay/pkg/log"
	"github.com/labstack/echo/v4"
)

// healthCheckTimeout 의존성 하나를 확인하는 데 허용하는 최대 시간
const healthCheckTimeout = 3 * time.Second

// DependencyCheck 헬스체크 대상 의존성과 확인 함수입니다.
type DependencyCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	checks []DependencyCheck

	buildInfo version.Info

	serverStartTime time.Time
}

// New Handler 인스턴스를 생성합니다.
func New(buildInfo version.Info, checks ...DependencyCheck) *Handler {
	return &Handler{
		checks: checks,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버와 라우팅/템플릿 저장소의 상태를 확인합니다.
// @Description 저장소 중 하나라도 읽을 수 없으면 status는 unhealthy가 됩니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	deps := make(map[string]system.DependencyStatus, len(h.checks))
	serverStatus := constants.HealthStatusHealthy

	for _, dc := range h.checks {
		status := h.check(c.Request().Context(), dc)
		if status.Status != constants.HealthStatusHealthy {
			serverStatus = constants.HealthStatusUnhealthy
		}
		deps[dc.Name] = status
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       serverStatus,
		Uptime:       int64(time.Since(h.serverStartTime).Seconds()),
		Dependencies: deps,
	})
}

func (h *Handler) check(ctx context.Context, dc DependencyCheck) system.DependencyStatus {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	start := time.Now()
	err := dc.Check(ctx)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return system.DependencyStatus{
			Status:    constants.HealthStatusUnhealthy,
			LatencyMs: latency,
			Message:   err.Error(),
		}
	}

	return system.DependencyStatus{
		Status:    constants.HealthStatusHealthy,
		LatencyMs: latency,
		Message:   constants.MsgDepStatusHealthy,
	}
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	goVersion := h.buildInfo.GoVersion
	if goVersion == "" {
		goVersion = runtime.Version()
	}

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   goVersion,
	})
}
