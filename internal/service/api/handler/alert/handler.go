// Package alert Grafana/Alertmanager 웹훅을 수신하는 엔드포인트 핸들러를 제공합니다.
package alert

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/darkkaiser/alert-relay/internal/message"
	apperrors "github.com/darkkaiser/alert-relay/internal/pkg/errors"
	"github.com/darkkaiser/alert-relay/internal/relay"
	"github.com/darkkaiser/alert-relay/internal/service/api/constants"
	"github.com/darkkaiser/alert-relay/internal/service/api/httputil"
	"github.com/darkkaiser/alert-relay/internal/service/api/model/response"
	applog "github.com/darkkaiser/alert-relay/pkg/log"
	"github.com/labstack/echo/v4"
)

// Relayer 수신한 알림 한 건을 처리합니다.
type Relayer interface {
	Handle(ctx context.Context, team string, payload []byte) (relay.Result, error)
}

// Handler 알림 수신 핸들러
type Handler struct {
	relayer Relayer
}

// New Handler 인스턴스를 생성합니다.
func New(relayer Relayer) *Handler {
	if relayer == nil {
		panic(constants.PanicMsgPipelineRequired)
	}

	return &Handler{relayer: relayer}
}

// ReceiveAlertHandler godoc
// @Summary 알림 수신
// @Description Grafana 또는 Alertmanager의 웹훅 알림을 받아 팀의 수신 번호로 SMS를, 웹훅 공급자로 메시지를 전송합니다.
// @Description
// @Description 응답의 sent_to는 조회된 수신 번호 목록이며 실제 발송 성공 여부와 관계없습니다.
// @Description 등록되지 않은 팀이면 sent_to는 빈 배열이고, 웹훅 공급자에게는 그대로 발송됩니다.
// @Description
// @Description ```bash
// @Description curl -X POST "http://localhost:5000/alert/devops" \
// @Description   -H "Content-Type: application/json" \
// @Description   -d '{"title":"[FIRING:1] HighCPU","message":"CPU 사용률 95%","status":"firing"}'
// @Description ```
// @Tags Alert
// @Accept json
// @Produce json
// @Param team path string true "팀 이름 (all, devops, cloud, web, noc, managers)" example(devops)
// @Param payload body object true "Grafana 또는 Alertmanager 웹훅 페이로드"
// @Success 200 {object} response.AlertResponse "처리 완료"
// @Failure 400 {object} response.ErrorResponse "JSON 형식 오류"
// @Failure 413 {object} response.ErrorResponse "요청 본문이 너무 큼"
// @Failure 500 {object} response.ErrorResponse "템플릿 설정 오류 또는 저장소 오류"
// @Router /alert/{team} [post]
func (h *Handler) ReceiveAlertHandler(c echo.Context) error {
	team := c.Param("team")

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		// BodyLimit 미들웨어가 반환하는 413 에러는 그대로 전달한다.
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		return httputil.NewBadRequestError(constants.ErrMsgBadRequestReadFailed)
	}

	h.log(c, team).WithField("payload_size", len(body)).Debug(constants.LogMsgAlertReceived)

	// 클라이언트가 연결을 끊어도 이미 시작한 발송은 끝까지 진행한다.
	result, err := h.relayer.Handle(context.WithoutCancel(c.Request().Context()), team, body)
	if err != nil {
		return h.mapError(c, team, err)
	}

	succeeded := 0
	for _, a := range result.Attempts {
		if a.Success() {
			succeeded++
		}
	}

	h.log(c, team).WithFields(applog.Fields{
		"recipients": len(result.SentTo),
		"attempts":   len(result.Attempts),
		"succeeded":  succeeded,
		"failed":     len(result.Attempts) - succeeded,
	}).Info(constants.LogMsgAlertProcessed)

	return c.JSON(http.StatusOK, response.AlertResponse{
		Status: "ok",
		SentTo: result.SentTo,
	})
}

func (h *Handler) mapError(c echo.Context, team string, err error) error {
	h.log(c, team).WithError(err).Error(constants.LogMsgAlertFailed)

	// 저장소 에러의 원인 체인에도 ParsingFailed가 있을 수 있으므로 저장소 오류를 먼저 판별한다.
	switch {
	case apperrors.Is(err, apperrors.System):
		return httputil.NewInternalServerError(constants.ErrMsgInternalServerStore)

	case errors.Is(err, message.ErrInvalidPayload):
		return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidJSON)

	case errors.Is(err, message.ErrUnknownPlaceholder):
		return httputil.NewInternalServerError(constants.ErrMsgInternalServerConfig)

	default:
		return httputil.NewInternalServerError(constants.ErrMsgInternalServer)
	}
}

func (h *Handler) log(c echo.Context, team string) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentAlertHandler, applog.Fields{
		"team":      team,
		"remote_ip": c.RealIP(),
	})
}
