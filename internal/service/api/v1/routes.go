// Package v1 /api/v1 경로의 관리 API 라우트를 정의합니다.
//
// 주요 엔드포인트:
//   - GET    /api/v1/routing                        - 라우팅 테이블과 템플릿 조회
//   - POST   /api/v1/teams/:team/numbers            - 수신 번호 추가
//   - DELETE /api/v1/teams/:team/numbers/:number    - 수신 번호 삭제
//   - POST   /api/v1/providers                      - 공급자 추가
//   - DELETE /api/v1/providers/:index               - 공급자 삭제
//   - PUT    /api/v1/template                       - 메시지 템플릿 변경
package v1

import (
	"github.com/darkkaiser/alert-relay/internal/service/api/middleware"
	"github.com/darkkaiser/alert-relay/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes Echo 인스턴스에 v1 관리 API 라우트를 등록합니다.
//
// JSON 본문을 받는 엔드포인트에는 ValidateContentType 미들웨어가 적용됩니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	v1Group := e.Group("/api/v1")

	jsonOnly := middleware.ValidateContentType(echo.MIMEApplicationJSON)

	v1Group.GET("/routing", h.GetRoutingHandler)

	v1Group.POST("/teams/:team/numbers", h.AddNumberHandler, jsonOnly)
	v1Group.DELETE("/teams/:team/numbers/:number", h.RemoveNumberHandler)

	v1Group.POST("/providers", h.AddProviderHandler, jsonOnly)
	v1Group.DELETE("/providers/:index", h.RemoveProviderHandler)

	v1Group.PUT("/template", h.UpdateTemplateHandler, jsonOnly)
}
