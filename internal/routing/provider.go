package routing

import (
	"encoding/json"
	"maps"
	"strings"

	"github.com/tidwall/gjson"
)

type providerKind int

const (
	kindBare providerKind = iota
	kindStructured
)

// Provider 알림 공급자 엔드포인트입니다.
//
// URL 문자열만 가진 Bare 형태와 URL과 요청 헤더를 함께 가진 Structured 형태 중 하나이며,
// 사용하는 쪽에서는 두 형태 모두 URL()과 Headers()로 동일하게 다룹니다.
type Provider struct {
	kind    providerKind
	url     string
	headers map[string]string
}

// NewBareProvider URL만 가진 공급자를 생성합니다.
func NewBareProvider(url string) Provider {
	return Provider{kind: kindBare, url: url}
}

// NewStructuredProvider URL과 헤더를 가진 공급자를 생성합니다. headers는 복사되어 저장됩니다.
func NewStructuredProvider(url string, headers map[string]string) Provider {
	h := make(map[string]string, len(headers))
	maps.Copy(h, headers)

	return Provider{kind: kindStructured, url: url, headers: h}
}

// URL 공급자의 엔드포인트 주소를 반환합니다. url 항목이 없던 Structured 공급자는 빈 문자열을 반환합니다.
func (p Provider) URL() string {
	return p.url
}

// Headers 요청에 추가할 헤더의 복사본을 반환합니다. Bare 공급자는 빈 맵을 반환합니다.
func (p Provider) Headers() map[string]string {
	h := make(map[string]string, len(p.headers))
	maps.Copy(h, p.headers)
	return h
}

func (p Provider) IsStructured() bool {
	return p.kind == kindStructured
}

// Equal 형태, URL, 헤더가 모두 같으면 true를 반환합니다. Bare와 Structured는 URL이 같아도 다른 공급자입니다.
func (p Provider) Equal(o Provider) bool {
	return p.kind == o.kind && p.url == o.url && maps.Equal(p.headers, o.headers)
}

type providerDocument struct {
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers"`
}

// parseProviderLine 라우팅 파일의 [sms_provider] 섹션 한 줄을 해석합니다.
// '{'로 시작하는 유효한 JSON 객체는 Structured, 그 외에는 줄 전체를 URL로 하는 Bare 공급자가 됩니다.
func parseProviderLine(line string) Provider {
	if !strings.HasPrefix(line, "{") || !gjson.Valid(line) {
		return NewBareProvider(line)
	}

	doc := gjson.Parse(line)

	headers := make(map[string]string)
	doc.Get("headers").ForEach(func(k, v gjson.Result) bool {
		headers[k.String()] = v.String()
		return true
	})

	return NewStructuredProvider(doc.Get("url").String(), headers)
}

// formatProviderLine parseProviderLine의 역변환입니다.
func formatProviderLine(p Provider) (string, error) {
	if !p.IsStructured() {
		return p.url, nil
	}

	b, err := json.Marshal(providerDocument{URL: p.url, Headers: p.Headers()})
	if err != nil {
		return "", err
	}
	return string(b), nil
}
