package dispatch

import (
	"net/http"
	"time"

	"github.com/darkkaiser/alert-relay/internal/pkg/version"
)

// Sender 공급자로 HTTP 요청을 전송합니다. 테스트에서는 가짜 구현으로 교체합니다.
type Sender interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPSender net/http 클라이언트 기반의 Sender입니다.
//
// 발송 타임아웃은 요청 컨텍스트로 적용하므로 클라이언트 자체에는 타임아웃을 두지 않습니다.
type HTTPSender struct {
	client    *http.Client
	userAgent string
}

var _ Sender = (*HTTPSender)(nil)

// NewHTTPSender 새로운 HTTPSender를 생성합니다.
func NewHTTPSender() *HTTPSender {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 4
	transport.IdleConnTimeout = 30 * time.Second

	return &HTTPSender{
		client:    &http.Client{Transport: transport},
		userAgent: "alert-relay/" + version.Get().Version,
	}
}

// Do User-Agent가 없으면 alert-relay 식별자를 추가한 뒤 요청을 전송합니다.
func (s *HTTPSender) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", s.userAgent)
	}
	return s.client.Do(req)
}

// CloseIdleConnections 유휴 연결을 정리합니다. 서비스 종료 시 호출합니다.
func (s *HTTPSender) CloseIdleConnections() {
	s.client.CloseIdleConnections()
}
