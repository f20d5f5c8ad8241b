// Package strutil 로그와 관리 API 응답에 노출되는 문자열을 가공하는 유틸리티를 제공합니다.
package strutil

import (
	"regexp"
	"strings"
)

const maskText = "*****"

var (
	// 쿼리 파라미터 중 자격 증명으로 취급하는 키
	sensitiveQueryRegexp = regexp.MustCompile(`(?i)(apikey|token|key|secret)=([^&]+)`)

	// 경로에 그대로 포함된 API 키로 간주하는 세그먼트
	longTokenSegmentRegexp = regexp.MustCompile(`^[A-Za-z0-9]{20,}$`)
)

// Mask 민감한 값을 로그에 남길 수 있도록 앞뒤 일부만 남기고 가립니다.
//
//	Mask("abc")                  // "***"
//	Mask("abcdefgh")             // "abcd***"
//	Mask("abcdefghijklmnopqrst") // "abcd***qrst"
func Mask(s string) string {
	if s == "" {
		return ""
	}

	if len(s) <= 3 {
		return "***"
	}

	if len(s) <= 12 {
		return s[:4] + "***"
	}

	return s[:4] + "***" + s[len(s)-4:]
}

// MaskURL 공급자 URL에 포함된 자격 증명을 가립니다.
//
//   - apikey, token, key, secret 쿼리 파라미터의 값 (대소문자 무시)
//   - 20자 이상의 영문/숫자로만 이루어진 경로 세그먼트
//
// URL 형식이 아니더라도 위 규칙에 해당하는 부분만 치환하고 나머지는 그대로 둡니다.
func MaskURL(rawURL string) string {
	if rawURL == "" {
		return ""
	}

	path, query, hasQuery := strings.Cut(rawURL, "?")

	segments := strings.Split(path, "/")
	for i, segment := range segments {
		// 스킴("https:")과 호스트 부분은 건드리지 않는다.
		if i < 3 && strings.Contains(path, "://") {
			continue
		}
		if longTokenSegmentRegexp.MatchString(segment) {
			segments[i] = maskText
		}
	}
	masked := strings.Join(segments, "/")

	if hasQuery {
		masked += "?" + sensitiveQueryRegexp.ReplaceAllString(query, "${1}="+maskText)
	}

	return masked
}

// MaskHeaders 헤더 이름에 authorization 또는 token이 포함된 항목의 값을 가린 복사본을 반환합니다.
// 원본 맵은 변경하지 않습니다.
func MaskHeaders(headers map[string]string) map[string]string {
	masked := make(map[string]string, len(headers))
	for k, v := range headers {
		lower := strings.ToLower(k)
		if strings.Contains(lower, "authorization") || strings.Contains(lower, "token") {
			masked[k] = maskText
			continue
		}
		masked[k] = v
	}
	return masked
}
