// Package relay 수신한 알림 한 건을 수신 번호 조회, 메시지 생성, 발송까지 처리합니다.
package relay

import (
	"context"

	"github.com/darkkaiser/alert-relay/internal/dispatch"
	"github.com/darkkaiser/alert-relay/internal/message"
	"github.com/darkkaiser/alert-relay/internal/msgtemplate"
	apperrors "github.com/darkkaiser/alert-relay/internal/pkg/errors"
	"github.com/darkkaiser/alert-relay/internal/routing"
	applog "github.com/darkkaiser/alert-relay/pkg/log"
)

const component = "relay.pipeline"

// Dispatcher 완성된 메시지를 공급자들에게 전송합니다.
type Dispatcher interface {
	Dispatch(ctx context.Context, numbers []string, message string, providers []routing.Provider) []dispatch.Attempt
}

// Result 알림 한 건의 처리 결과입니다.
type Result struct {
	// SentTo 조회된 수신 번호 목록입니다. 발송 성공 여부와 관계없이 채워지며 nil이 아닙니다.
	SentTo []string

	Message  string
	Attempts []dispatch.Attempt
}

// Pipeline 저장소와 발송기를 묶어 알림 요청을 처리합니다. 요청 사이에 상태를 유지하지 않습니다.
type Pipeline struct {
	routes     routing.Store
	templates  msgtemplate.Store
	dispatcher Dispatcher
}

// New 새로운 Pipeline을 생성합니다.
func New(routes routing.Store, templates msgtemplate.Store, dispatcher Dispatcher) *Pipeline {
	if routes == nil {
		panic("relay: routing.Store는 필수입니다")
	}
	if templates == nil {
		panic("relay: msgtemplate.Store는 필수입니다")
	}
	if dispatcher == nil {
		panic("relay: Dispatcher는 필수입니다")
	}

	return &Pipeline{
		routes:     routes,
		templates:  templates,
		dispatcher: dispatcher,
	}
}

// Handle 팀의 수신 번호를 조회하고 페이로드로 메시지를 만들어 모든 공급자에게 발송합니다.
//
// 등록되지 않은 팀이어도 에러가 아니며, 수신 번호 없이 웹훅 공급자에게는 그대로 발송됩니다.
// 개별 발송의 실패는 Result.Attempts에만 기록되고 에러로 반환되지 않습니다.
func (p *Pipeline) Handle(ctx context.Context, team string, payload []byte) (Result, error) {
	table, err := p.routes.Load(ctx)
	if err != nil {
		return Result{SentTo: []string{}}, apperrors.Wrap(err, apperrors.System, "라우팅 테이블을 불러오지 못했습니다")
	}

	numbers := routing.ResolveNumbers(table, team)
	if _, ok := routing.ParseTeam(team); !ok {
		applog.WithComponentAndFields(component, applog.Fields{
			"team": team,
		}).Warn("등록되지 않은 팀으로 알림이 수신되었습니다")
	}

	tpl, err := msgtemplate.Resolve(ctx, p.templates)
	if err != nil {
		return Result{SentTo: numbers}, apperrors.Wrap(err, apperrors.System, "메시지 템플릿을 불러오지 못했습니다")
	}

	msg, err := message.Build(payload, tpl)
	if err != nil {
		return Result{SentTo: numbers}, err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"team":           team,
		"recipients":     len(numbers),
		"providers":      len(table.Providers),
		"message_length": len(msg),
	}).Info("알림 발송을 시작합니다")

	attempts := p.dispatcher.Dispatch(ctx, numbers, msg, table.Providers)

	return Result{
		SentTo:   numbers,
		Message:  msg,
		Attempts: attempts,
	}, nil
}
