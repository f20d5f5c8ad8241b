// Package handler /api/v1 관리 API의 HTTP 요청 핸들러를 제공합니다.
//
// 라우팅 테이블(팀별 수신 번호, 공급자 목록)과 메시지 템플릿을 조회하고 변경합니다.
// 모든 변경은 저장소의 Update를 통해 읽기-수정-저장 단위로 수행됩니다.
package handler

import (
	"github.com/darkkaiser/alert-relay/internal/msgtemplate"
	"github.com/darkkaiser/alert-relay/internal/routing"
	"github.com/darkkaiser/alert-relay/internal/service/api/constants"
	applog "github.com/darkkaiser/alert-relay/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler v1 관리 API 핸들러입니다.
type Handler struct {
	routes    routing.Store
	templates msgtemplate.Store
}

// New Handler 인스턴스를 생성합니다.
func New(routes routing.Store, templates msgtemplate.Store) *Handler {
	if routes == nil {
		panic(constants.PanicMsgRoutingStoreRequired)
	}
	if templates == nil {
		panic(constants.PanicMsgTemplateStoreRequired)
	}

	return &Handler{
		routes:    routes,
		templates: templates,
	}
}

// log 공통 로깅 필드가 설정된 로거 엔트리를 반환합니다.
func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  c.Path(),
		"remote_ip": c.RealIP(),
	})
}
