// Package dispatch 완성된 알림 메시지를 라우팅 테이블의 공급자들에게 순서대로 전송합니다.
//
// 공급자 하나의 실패는 해당 발송의 Attempt에 기록될 뿐 나머지 공급자나 번호의 발송을 막지 않으며,
// 실패한 발송을 재시도하지 않습니다.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	apperrors "github.com/darkkaiser/alert-relay/internal/pkg/errors"
	"github.com/darkkaiser/alert-relay/internal/routing"
	applog "github.com/darkkaiser/alert-relay/pkg/log"
	"github.com/darkkaiser/alert-relay/pkg/strutil"
)

const component = "dispatch"

// maxBodySnippetBytes 로그와 Attempt에 남길 응답 본문의 최대 크기입니다.
const maxBodySnippetBytes = 4 * 1024

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// Dispatcher 공급자 목록을 순서대로 순회하며 메시지를 전송합니다.
//
// 요청 처리 흐름 하나에서만 사용되며 요청 사이에 상태를 유지하지 않으므로 여러 고루틴에서 함께 사용해도 안전합니다.
type Dispatcher struct {
	sender Sender

	sendTimeout      time.Duration
	providerInterval time.Duration

	wait func(ctx context.Context, d time.Duration) error
}

// New 새로운 Dispatcher를 생성합니다. Sender를 지정하지 않으면 HTTPSender를 사용합니다.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		sendTimeout:      DefaultSendTimeout,
		providerInterval: DefaultProviderInterval,
		wait:             sleepContext,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.sender == nil {
		d.sender = NewHTTPSender()
	}
	return d
}

// Dispatch 메시지를 모든 공급자에게 전송하고 발송 결과를 시도한 순서대로 반환합니다.
//
//   - URL이 비어 있는 공급자는 건너뜁니다 (Attempt 없음, 대기 없음).
//   - 웹훅 공급자는 한 번, SMS 공급자는 중복을 제거한 번호마다 한 번씩 전송합니다.
//   - 실제로 발송을 시도한 공급자 사이에는 providerInterval만큼 대기합니다.
//   - ctx가 취소되면 남은 공급자는 시도하지 않습니다.
func (d *Dispatcher) Dispatch(ctx context.Context, numbers []string, message string, providers []routing.Provider) []Attempt {
	numbers = routing.UniqueNumbers(numbers)

	attempts := make([]Attempt, 0, len(providers))
	processed := 0

	for i, p := range providers {
		if p.URL() == "" {
			applog.WithComponentAndFields(component, applog.Fields{
				"provider_index": i,
			}).Debug("URL이 없는 공급자를 건너뜁니다")
			continue
		}

		if processed > 0 {
			if err := d.wait(ctx, d.providerInterval); err != nil {
				d.logAborted(i, len(providers), err)
				break
			}
		} else if err := ctx.Err(); err != nil {
			d.logAborted(i, len(providers), err)
			break
		}

		switch Classify(p.URL()) {
		case ChannelWebhook:
			attempts = append(attempts, d.sendWebhook(ctx, i, p, message))

		case ChannelSMS:
			for _, n := range numbers {
				attempts = append(attempts, d.sendSMS(ctx, i, p, n, message))
			}
		}

		processed++
	}

	d.logSummary(attempts, processed, len(providers))

	return attempts
}

func (d *Dispatcher) sendWebhook(ctx context.Context, index int, p routing.Provider, message string) Attempt {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(struct {
		Text string `json:"text"`
	}{Text: message}); err != nil {
		return d.record(Attempt{
			ProviderIndex: index,
			URL:           strutil.MaskURL(p.URL()),
			Channel:       ChannelWebhook,
			Err:           apperrors.Wrap(err, apperrors.Internal, "웹훅 요청 본문 생성 실패"),
			ErrorKind:     ErrorKindRequest,
		})
	}

	return d.send(ctx, Attempt{
		ProviderIndex: index,
		URL:           strutil.MaskURL(p.URL()),
		Channel:       ChannelWebhook,
	}, p, contentTypeJSON, bytes.TrimRight(buf.Bytes(), "\n"))
}

func (d *Dispatcher) sendSMS(ctx context.Context, index int, p routing.Provider, number, message string) Attempt {
	form := url.Values{}
	form.Set("receptor", number)
	form.Set("message", message)

	return d.send(ctx, Attempt{
		ProviderIndex: index,
		URL:           strutil.MaskURL(p.URL()),
		Channel:       ChannelSMS,
		Number:        number,
	}, p, contentTypeForm, []byte(form.Encode()))
}

// send 요청 한 건을 발송 타임아웃 안에서 전송하고 결과를 a에 채워 반환합니다.
func (d *Dispatcher) send(ctx context.Context, a Attempt, p routing.Provider, contentType string, body []byte) Attempt {
	ctx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.URL(), bytes.NewReader(body))
	if err != nil {
		a.Err = apperrors.Wrap(err, apperrors.InvalidInput, "발송 요청을 생성할 수 없습니다")
		a.ErrorKind = ErrorKindRequest
		return d.record(a)
	}

	req.Header.Set("Content-Type", contentType)
	for k, v := range p.Headers() {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := d.sender.Do(req)
	if err != nil {
		a.Duration = time.Since(start)
		a.Err, a.ErrorKind = classifyTransportError(err, d.sendTimeout)
		return d.record(a)
	}
	defer resp.Body.Close()

	snippet, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodySnippetBytes))
	// 연결 재사용을 위해 남은 본문을 버린다.
	_, _ = io.Copy(io.Discard, resp.Body)

	a.Duration = time.Since(start)
	a.StatusCode = resp.StatusCode
	a.Body = string(snippet)

	if readErr != nil {
		a.Err, a.ErrorKind = classifyTransportError(readErr, d.sendTimeout)
		return d.record(a)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		a.Err = apperrors.Newf(apperrors.ExecutionFailed, "공급자가 실패 응답을 반환했습니다 (status=%d %s)", resp.StatusCode, http.StatusText(resp.StatusCode))
		a.ErrorKind = ErrorKindStatus
	}

	return d.record(a)
}

// classifyTransportError 전송 단계의 에러를 타임아웃과 네트워크 오류로 구분합니다.
func classifyTransportError(err error, timeout time.Duration) (error, ErrorKind) {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return apperrors.Wrap(err, apperrors.Timeout, fmt.Sprintf("발송 타임아웃(%s)을 초과했습니다", timeout)), ErrorKindTimeout
	}
	return apperrors.Wrap(err, apperrors.Unavailable, "공급자에 연결할 수 없습니다"), ErrorKindNetwork
}

// record 발송 결과를 로그로 남기고 그대로 반환합니다.
func (d *Dispatcher) record(a Attempt) Attempt {
	fields := applog.Fields{
		"provider_index": a.ProviderIndex,
		"provider_url":   a.URL,
		"channel":        a.Channel,
		"status_code":    a.StatusCode,
		"duration":       a.Duration.String(),
	}
	if a.Number != "" {
		fields["number"] = strutil.Mask(a.Number)
	}
	if a.Body != "" {
		fields["response_body"] = a.Body
	}

	if a.Success() {
		applog.WithComponentAndFields(component, fields).Info("알림 발송 성공")
		return a
	}

	fields["error_kind"] = a.ErrorKind
	fields["error"] = a.Err
	applog.WithComponentAndFields(component, fields).Warn("알림 발송 실패")

	return a
}

func (d *Dispatcher) logAborted(index, total int, err error) {
	applog.WithComponentAndFields(component, applog.Fields{
		"next_provider_index": index,
		"remaining_providers": total - index,
		"error":               err,
	}).Warn("요청이 취소되어 남은 공급자에게 발송하지 않습니다")
}

func (d *Dispatcher) logSummary(attempts []Attempt, processed, total int) {
	succeeded := 0
	for _, a := range attempts {
		if a.Success() {
			succeeded++
		}
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"providers_total":     total,
		"providers_processed": processed,
		"attempts":            len(attempts),
		"succeeded":           succeeded,
		"failed":              len(attempts) - succeeded,
	}).Info("알림 발송 처리 완료")
}

// sleepContext d만큼 대기하거나 ctx가 취소되면 즉시 ctx.Err()를 반환합니다.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
