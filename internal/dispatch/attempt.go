package dispatch

import (
	"strings"
	"time"
)

// Channel 공급자 URL로 판별한 발송 방식입니다.
type Channel string

const (
	// ChannelWebhook 메시지 전체를 JSON {"text": ...}로 한 번 전송합니다.
	ChannelWebhook Channel = "webhook"

	// ChannelSMS 수신 번호마다 form 인코딩된 {receptor, message}를 전송합니다.
	ChannelSMS Channel = "sms"
)

// webhookMarker URL에 이 문자열이 포함되어 있으면 웹훅 공급자로 취급합니다.
const webhookMarker = "/hooks/"

// Classify URL에 "/hooks/"가 포함되어 있으면 웹훅, 그 외에는 SMS로 분류합니다. 스킴과 호스트는 보지 않습니다.
func Classify(url string) Channel {
	if strings.Contains(url, webhookMarker) {
		return ChannelWebhook
	}
	return ChannelSMS
}

// ErrorKind 발송 실패의 원인 분류입니다.
type ErrorKind string

const (
	ErrorKindNone    ErrorKind = ""
	ErrorKindRequest ErrorKind = "request" // 요청을 만들 수 없음 (잘못된 URL 등)
	ErrorKindNetwork ErrorKind = "network" // 연결 실패, 응답 수신 중 오류
	ErrorKindTimeout ErrorKind = "timeout" // 발송 타임아웃 초과
	ErrorKindStatus  ErrorKind = "status"  // 2xx가 아닌 응답
)

// Attempt 한 번의 발송 요청 결과입니다.
type Attempt struct {
	ProviderIndex int
	URL           string // 자격 증명이 마스킹된 공급자 URL
	Channel       Channel
	Number        string // SMS 발송의 수신 번호 (웹훅은 빈 문자열)

	StatusCode int
	Body       string // 응답 본문 앞부분 (최대 maxBodySnippetBytes)
	Duration   time.Duration

	Err       error
	ErrorKind ErrorKind
}

// Success 응답이 2xx로 도착했으면 true를 반환합니다.
func (a Attempt) Success() bool {
	return a.Err == nil
}
