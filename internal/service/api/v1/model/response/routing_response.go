package response

// DestinationView 팀에 등록된 수신 번호
type DestinationView struct {
	Number      string `json:"number" example:"+821012345678"`
	Description string `json:"description" example:"당직 휴대폰"`
}

// ProviderView 자격 증명이 마스킹된 공급자 정보
type ProviderView struct {
	// 삭제 요청에 사용하는 0부터 시작하는 위치
	Index int `json:"index" example:"0"`
	// 쿼리의 API 키, 경로의 토큰이 마스킹된 URL
	URL string `json:"url" example:"https://sms.example.com/v1/send?apikey=*****"`
	// 발송 방식: webhook, sms
	Channel string `json:"channel" example:"sms"`
	// 인증 관련 값이 마스킹된 헤더 (bare 공급자는 생략)
	Headers map[string]string `json:"headers,omitempty"`
}

// RoutingResponse 라우팅 테이블 조회 응답
type RoutingResponse struct {
	// 팀 이름별 수신 번호 목록
	Teams map[string][]DestinationView `json:"teams"`
	// 등록 순서대로 나열한 공급자 목록
	Providers []ProviderView `json:"providers"`
	// 현재 적용되는 메시지 템플릿
	Template string `json:"template" example:"{status} {summary}"`
	// 저장된 템플릿이 없어 기본 템플릿이 적용 중이면 true
	DefaultTemplate bool `json:"default_template" example:"true"`
}
