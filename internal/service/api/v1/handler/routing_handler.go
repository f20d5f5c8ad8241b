package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/darkkaiser/alert-relay/internal/dispatch"
	"github.com/darkkaiser/alert-relay/internal/message"
	"github.com/darkkaiser/alert-relay/internal/msgtemplate"
	"github.com/darkkaiser/alert-relay/internal/routing"
	"github.com/darkkaiser/alert-relay/internal/service/api/constants"
	"github.com/darkkaiser/alert-relay/internal/service/api/handler"
	"github.com/darkkaiser/alert-relay/internal/service/api/httputil"
	"github.com/darkkaiser/alert-relay/internal/service/api/v1/model/request"
	"github.com/darkkaiser/alert-relay/internal/service/api/v1/model/response"
	applog "github.com/darkkaiser/alert-relay/pkg/log"
	"github.com/darkkaiser/alert-relay/pkg/strutil"
	"github.com/darkkaiser/alert-relay/pkg/validation"
	"github.com/labstack/echo/v4"
)

// GetRoutingHandler godoc
// @Summary 라우팅 테이블 조회
// @Description 팀별 수신 번호, 공급자 목록, 현재 메시지 템플릿을 반환합니다.
// @Description 공급자 URL과 헤더의 자격 증명은 마스킹됩니다.
// @Tags Routing
// @Produce json
// @Success 200 {object} response.RoutingResponse "라우팅 테이블"
// @Failure 500 {object} response.ErrorResponse "저장소 오류"
// @Router /api/v1/routing [get]
func (h *Handler) GetRoutingHandler(c echo.Context) error {
	ctx := c.Request().Context()

	table, err := h.routes.Load(ctx)
	if err != nil {
		h.log(c).WithError(err).Error("라우팅 테이블 조회 실패")
		return httputil.NewInternalServerError(constants.ErrMsgInternalServerStore)
	}

	stored, err := h.templates.Get(ctx)
	if err != nil {
		h.log(c).WithError(err).Error("메시지 템플릿 조회 실패")
		return httputil.NewInternalServerError(constants.ErrMsgInternalServerStore)
	}

	resp := response.RoutingResponse{
		Teams:           make(map[string][]response.DestinationView, len(routing.Teams)),
		Providers:       make([]response.ProviderView, 0, len(table.Providers)),
		Template:        stored,
		DefaultTemplate: stored == "",
	}
	if resp.DefaultTemplate {
		resp.Template = msgtemplate.DefaultTemplate
	}

	for _, team := range routing.Teams {
		dests := make([]response.DestinationView, 0, len(table.Teams[team]))
		for _, d := range table.Teams[team] {
			dests = append(dests, response.DestinationView{Number: d.Number, Description: d.Description})
		}
		resp.Teams[team.String()] = dests
	}

	for i, p := range table.Providers {
		view := response.ProviderView{
			Index:   i,
			URL:     strutil.MaskURL(p.URL()),
			Channel: string(dispatch.Classify(p.URL())),
		}
		if p.IsStructured() {
			view.Headers = strutil.MaskHeaders(p.Headers())
		}
		resp.Providers = append(resp.Providers, view)
	}

	return c.JSON(http.StatusOK, resp)
}

// AddNumberHandler godoc
// @Summary 수신 번호 추가
// @Description 팀에 수신 번호를 추가합니다. 같은 번호는 all 팀에도 함께 추가됩니다.
// @Description 이미 등록된 번호는 무시됩니다.
// @Tags Routing
// @Accept json
// @Produce json
// @Param team path string true "팀 이름 (all, devops, cloud, web, noc, managers)" example(devops)
// @Param body body request.AddNumberRequest true "추가할 번호"
// @Success 200 {object} response.SuccessResponse "성공"
// @Failure 400 {object} response.ErrorResponse "번호 누락 또는 허용되지 않는 문자"
// @Failure 404 {object} response.ErrorResponse "등록되지 않은 팀"
// @Failure 500 {object} response.ErrorResponse "저장소 오류"
// @Router /api/v1/teams/{team}/numbers [post]
func (h *Handler) AddNumberHandler(c echo.Context) error {
	team, ok := routing.ParseTeam(c.Param("team"))
	if !ok {
		return httputil.NewNotFoundError(constants.ErrMsgNotFoundTeam)
	}

	req := new(request.AddNumberRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidBody()
	}
	if err := handler.ValidateRequest(req); err != nil {
		return NewErrValidationFailed(handler.FormatValidationError(err))
	}

	err := h.routes.Update(c.Request().Context(), func(t *routing.Table) error {
		return t.AddNumber(team, routing.Destination{Number: req.Number, Description: req.Description})
	})
	if err != nil {
		return h.fail(c, err)
	}

	h.log(c).WithFields(applog.Fields{
		"team":   team,
		"number": strutil.Mask(req.Number),
	}).Info(constants.LogMsgRoutingNumberAdded)

	return httputil.NewSuccessResponse(c)
}

// RemoveNumberHandler godoc
// @Summary 수신 번호 삭제
// @Description 해당 팀에서만 번호를 삭제합니다. all 팀에 추가된 번호는 유지됩니다.
// @Tags Routing
// @Produce json
// @Param team path string true "팀 이름" example(devops)
// @Param number path string true "삭제할 번호 (URL 인코딩)" example(+821012345678)
// @Success 200 {object} response.SuccessResponse "성공"
// @Failure 404 {object} response.ErrorResponse "등록되지 않은 팀 또는 번호"
// @Failure 500 {object} response.ErrorResponse "저장소 오류"
// @Router /api/v1/teams/{team}/numbers/{number} [delete]
func (h *Handler) RemoveNumberHandler(c echo.Context) error {
	team, ok := routing.ParseTeam(c.Param("team"))
	if !ok {
		return httputil.NewNotFoundError(constants.ErrMsgNotFoundTeam)
	}
	number := c.Param("number")
	if unescaped, err := url.PathUnescape(number); err == nil {
		number = unescaped
	}

	err := h.routes.Update(c.Request().Context(), func(t *routing.Table) error {
		return t.RemoveNumber(team, number)
	})
	if err != nil {
		return h.fail(c, err)
	}

	h.log(c).WithFields(applog.Fields{
		"team":   team,
		"number": strutil.Mask(number),
	}).Info(constants.LogMsgRoutingNumberRemove)

	return httputil.NewSuccessResponse(c)
}

// AddProviderHandler godoc
// @Summary 공급자 추가
// @Description 알림 공급자를 목록 끝에 추가합니다. headers가 있으면 structured 형식으로 저장됩니다.
// @Description URL에 "/hooks/"가 포함되어 있으면 웹훅, 그 외에는 SMS 공급자로 동작합니다.
// @Description 동일한 공급자가 이미 있으면 무시됩니다.
// @Tags Routing
// @Accept json
// @Produce json
// @Param body body request.AddProviderRequest true "추가할 공급자"
// @Success 200 {object} response.SuccessResponse "성공"
// @Failure 400 {object} response.ErrorResponse "잘못된 URL"
// @Failure 500 {object} response.ErrorResponse "저장소 오류"
// @Router /api/v1/providers [post]
func (h *Handler) AddProviderHandler(c echo.Context) error {
	req := new(request.AddProviderRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidBody()
	}
	if err := handler.ValidateRequest(req); err != nil {
		return NewErrValidationFailed(handler.FormatValidationError(err))
	}
	if err := validation.ValidateEndpointURL(req.URL); err != nil {
		return NewErrValidationFailed(err.Error())
	}

	p := routing.NewBareProvider(req.URL)
	if len(req.Headers) > 0 {
		p = routing.NewStructuredProvider(req.URL, req.Headers)
	}

	var added bool
	err := h.routes.Update(c.Request().Context(), func(t *routing.Table) error {
		added = t.AddProvider(p)
		return nil
	})
	if err != nil {
		return h.fail(c, err)
	}

	h.log(c).WithFields(applog.Fields{
		"url":     strutil.MaskURL(req.URL),
		"channel": dispatch.Classify(req.URL),
		"added":   added,
	}).Info(constants.LogMsgProviderAdded)

	return httputil.NewSuccessResponse(c)
}

// RemoveProviderHandler godoc
// @Summary 공급자 삭제
// @Description 0부터 시작하는 위치로 공급자를 삭제합니다. 위치는 라우팅 테이블 조회 결과의 index입니다.
// @Tags Routing
// @Produce json
// @Param index path int true "공급자 위치" example(0)
// @Success 200 {object} response.SuccessResponse "성공"
// @Failure 400 {object} response.ErrorResponse "정수가 아닌 위치"
// @Failure 404 {object} response.ErrorResponse "범위를 벗어난 위치"
// @Failure 500 {object} response.ErrorResponse "저장소 오류"
// @Router /api/v1/providers/{index} [delete]
func (h *Handler) RemoveProviderHandler(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return NewErrInvalidProviderIndex()
	}

	err = h.routes.Update(c.Request().Context(), func(t *routing.Table) error {
		return t.RemoveProvider(index)
	})
	if err != nil {
		return h.fail(c, err)
	}

	h.log(c).WithField("index", index).Info(constants.LogMsgProviderRemoved)

	return httputil.NewSuccessResponse(c)
}

// UpdateTemplateHandler godoc
// @Summary 메시지 템플릿 변경
// @Description 알림 메시지 템플릿을 저장합니다. 빈 문자열을 보내면 저장된 템플릿을 삭제하고 기본 템플릿({status} {summary})으로 되돌립니다.
// @Description
// @Description 사용 가능한 placeholder: {status}, {summary}, {description}, {alertname}
// @Tags Template
// @Accept json
// @Produce json
// @Param body body request.UpdateTemplateRequest true "템플릿"
// @Success 200 {object} response.SuccessResponse "성공"
// @Failure 400 {object} response.ErrorResponse "알 수 없는 placeholder"
// @Failure 500 {object} response.ErrorResponse "저장소 오류"
// @Router /api/v1/template [put]
func (h *Handler) UpdateTemplateHandler(c echo.Context) error {
	req := new(request.UpdateTemplateRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidBody()
	}
	if err := handler.ValidateRequest(req); err != nil {
		return NewErrValidationFailed(handler.FormatValidationError(err))
	}
	if err := message.ValidateTemplate(req.Template); err != nil {
		return h.fail(c, err)
	}

	if err := h.templates.Set(c.Request().Context(), req.Template); err != nil {
		return h.fail(c, err)
	}

	h.log(c).WithFields(applog.Fields{
		"template_length": len(req.Template),
		"reset":           req.Template == "",
	}).Info(constants.LogMsgTemplateUpdated)

	return httputil.NewSuccessResponse(c)
}

// fail 에러를 HTTP 에러로 변환합니다. 클라이언트 오류가 아니면 에러 로그를 남깁니다.
func (h *Handler) fail(c echo.Context, err error) error {
	httpErr := toHTTPError(err)
	if he, ok := httpErr.(*echo.HTTPError); ok && he.Code >= http.StatusInternalServerError {
		h.log(c).WithError(err).Error("라우팅 저장소 변경 실패")
	}
	return httpErr
}
