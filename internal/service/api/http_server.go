package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/alert-relay/internal/service/api/constants"
	"github.com/darkkaiser/alert-relay/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/alert-relay/internal/service/api/middleware"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// hstsMaxAge TLS 사용 시 Strict-Transport-Security 헤더의 max-age (1년)
const hstsMaxAge = 365 * 24 * 60 * 60

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	AllowOrigins []string

	// WriteTimeout 응답 쓰기 제한 시간 (0이면 constants.DefaultWriteTimeout)
	// 알림 한 건의 처리 시간은 공급자 수와 수신 번호 수에 비례하므로 발송 설정에 맞춰 잡아야 한다.
	WriteTimeout time.Duration

	// EnableHSTS TLS 서버로 동작할 때 HSTS 헤더를 추가할지 여부
	EnableHSTS bool
}

// NewHTTPServer 설정된 미들웨어를 포함한 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다:
//
//  1. PanicRecovery - 다른 미들웨어에서 발생한 panic까지 복구하도록 가장 먼저 적용
//  2. RequestID - 로그에 request_id가 남도록 로깅보다 먼저 적용
//  3. Server 헤더 제거
//  4. HTTPLogger - 민감한 쿼리 파라미터를 마스킹하여 요청/응답 기록
//  5. BodyLimit - 초과 시 413 응답
//  6. CORS
//  7. Secure - 보안 헤더 추가 (EnableHSTS이면 HSTS 포함)
//
// 요청 처리 시간 제한(Timeout 미들웨어)은 적용하지 않는다. 알림 발송은 공급자마다
// 최대 발송 타임아웃과 공급자 간 대기 시간을 소비하므로 WriteTimeout으로만 제한한다.
//
// 라우트는 반환된 Echo 인스턴스에 별도로 등록해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	writeTimeout := cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = constants.DefaultWriteTimeout
	}

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = writeTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	// Echo 내부 로그를 애플리케이션 로거로 통합한다.
	e.Logger = appmiddleware.NewLogger()

	e.HTTPErrorHandler = httputil.ErrorHandler

	// 1. Panic 복구
	e.Use(appmiddleware.PanicRecovery())
	// 2. Request ID
	e.Use(middleware.RequestID())
	// 3. Server 헤더 제거
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	// 4. HTTP 로깅
	e.Use(appmiddleware.HTTPLogger())
	// 5. Body Limit
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	// 6. CORS
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete},
	}))
	// 7. 보안 헤더
	secureConfig := middleware.DefaultSecureConfig
	if cfg.EnableHSTS {
		secureConfig.HSTSMaxAge = hstsMaxAge
	}
	e.Use(middleware.SecureWithConfig(secureConfig))

	return e
}
