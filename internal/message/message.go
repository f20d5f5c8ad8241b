// Package message 알림 페이로드(Grafana/Alertmanager 웹훅)를 템플릿에 따라 사람이 읽을 수 있는 메시지로 변환합니다.
//
// 지원하는 페이로드 형태는 두 가지입니다.
//
//   - 다중 알림: 최상위에 alerts 배열이 있는 Alertmanager 형식. 알림마다 한 줄을 만듭니다.
//   - 단일 알림: alerts 없이 title과 state가 함께 있는 Grafana 형식. 한 줄을 만듭니다.
//
// 둘 중 어느 형태에도 해당하지 않으면 빈 메시지를 반환하며 에러로 취급하지 않습니다.
package message

import (
	"io"
	"strings"

	"github.com/darkkaiser/alert-relay/internal/msgtemplate"
	apperrors "github.com/darkkaiser/alert-relay/internal/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/valyala/fasttemplate"
)

const (
	startTag = "{"
	endTag   = "}"
)

// 템플릿에서 사용할 수 있는 placeholder 이름입니다.
const (
	FieldStatus      = "status"
	FieldSummary     = "summary"
	FieldDescription = "description"
	FieldAlertName   = "alertname"
)

var knownFields = []string{FieldStatus, FieldSummary, FieldDescription, FieldAlertName}

var (
	// ErrUnknownPlaceholder 템플릿이 페이로드 형태가 제공하지 않는 placeholder를 참조할 때 반환됩니다.
	ErrUnknownPlaceholder = apperrors.New(apperrors.InvalidInput, "템플릿에 사용할 수 없는 placeholder가 포함되어 있습니다")

	// ErrInvalidPayload 페이로드가 올바른 JSON이 아닐 때 반환됩니다.
	ErrInvalidPayload = apperrors.New(apperrors.ParsingFailed, "알림 페이로드가 올바른 JSON 형식이 아닙니다")
)

// Build 페이로드를 템플릿에 적용하여 메시지를 만듭니다. 여러 줄은 "\n"으로 연결되며 마지막 줄바꿈은 없습니다.
//
// 템플릿이 페이로드 형태의 치환 집합에 없는 placeholder를 참조하면 메시지 전체를 만들지 않고
// ErrUnknownPlaceholder를 감싼 에러를 반환합니다. 단일 알림 형태는 {description}을 제공하지 않습니다.
func Build(payload []byte, template string) (string, error) {
	if !gjson.ValidBytes(payload) {
		return "", ErrInvalidPayload
	}
	if template == "" {
		template = msgtemplate.DefaultTemplate
	}

	root := gjson.ParseBytes(payload)
	if !root.IsObject() {
		return "", nil
	}

	var lines []string

	switch alerts := root.Get("alerts"); {
	case alerts.Exists():
		if !alerts.IsArray() {
			return "", nil
		}

		for _, a := range alerts.Array() {
			line, err := render(template, map[string]string{
				FieldStatus:      stringOr(a.Get("status"), "firing"),
				FieldSummary:     stringOr(a.Get("annotations.summary"), "No summary"),
				FieldDescription: stringOr(a.Get("annotations.description"), ""),
				FieldAlertName:   stringOr(a.Get("labels.alertname"), ""),
			})
			if err != nil {
				return "", err
			}
			lines = append(lines, line)
		}

	case root.Get("title").Exists() && root.Get("state").Exists():
		line, err := render(template, map[string]string{
			FieldStatus:    stringOr(root.Get("state"), "firing"),
			FieldSummary:   stringOr(root.Get("message"), "No message"),
			FieldAlertName: stringOr(root.Get("ruleName"), ""),
		})
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n"), nil
}

// ValidateTemplate 템플릿이 알려진 placeholder만 사용하는지 검사합니다. 빈 템플릿은 유효합니다.
func ValidateTemplate(template string) error {
	values := make(map[string]string, len(knownFields))
	for _, f := range knownFields {
		values[f] = ""
	}

	_, err := render(template, values)
	return err
}

// 이스케이프된 중괄호("{{", "}}")를 나타내는 내부 태그 이름. 태그 이름에는 중괄호가 들어갈 수 없다.
const (
	escapedOpenTag  = "\x00lbrace"
	escapedCloseTag = "\x00rbrace"
)

func render(template string, values map[string]string) (string, error) {
	return fasttemplate.ExecuteFuncStringWithErr(escapeBraces(template), startTag, endTag, func(w io.Writer, tag string) (int, error) {
		switch tag {
		case escapedOpenTag:
			return io.WriteString(w, startTag)
		case escapedCloseTag:
			return io.WriteString(w, endTag)
		}

		v, ok := values[tag]
		if !ok {
			return 0, apperrors.Wrapf(ErrUnknownPlaceholder, apperrors.InvalidInput, "알 수 없는 placeholder: %s%s%s", startTag, tag, endTag)
		}
		return io.WriteString(w, v)
	})
}

// escapeBraces "{{"와 "}}"를 중괄호 문자 하나를 출력하는 내부 태그로 바꿉니다.
//
// 왼쪽부터 차례로 해석하므로 "{{{status}}}"는 "{", {status}, "}" 순서로 나뉩니다.
// placeholder 내부는 그대로 두고, 닫히지 않은 "{"는 이후 문자열과 함께 문자 그대로 남깁니다.
func escapeBraces(template string) string {
	if !strings.Contains(template, "{{") && !strings.Contains(template, "}}") {
		return template
	}

	var sb strings.Builder
	sb.Grow(len(template) + 8)

	for i := 0; i < len(template); {
		rest := template[i:]

		switch {
		case strings.HasPrefix(rest, "{{"):
			sb.WriteString(startTag + escapedOpenTag + endTag)
			i += 2

		case rest[0] == '{':
			end := strings.IndexByte(rest, '}')
			if end < 0 {
				sb.WriteString(rest)
				i = len(template)
				continue
			}
			sb.WriteString(rest[:end+1])
			i += end + 1

		case strings.HasPrefix(rest, "}}"):
			sb.WriteString(startTag + escapedCloseTag + endTag)
			i += 2

		default:
			sb.WriteByte(rest[0])
			i++
		}
	}

	return sb.String()
}

// stringOr 값이 없거나 null이면 def를 반환합니다.
func stringOr(r gjson.Result, def string) string {
	if !r.Exists() || r.Type == gjson.Null {
		return def
	}
	return r.String()
}
