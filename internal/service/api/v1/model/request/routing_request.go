package request

// AddNumberRequest 팀 수신 번호 추가 요청
type AddNumberRequest struct {
	// 수신 번호
	Number string `json:"number" validate:"required,max=32,excludesall=0x7C" korean:"번호" example:"+821012345678"`
	// 번호 설명 (선택)
	Description string `json:"description" validate:"max=100" korean:"설명" example:"당직 휴대폰"`
}

// AddProviderRequest 알림 공급자 추가 요청
//
// URL에 "/hooks/"가 포함되어 있으면 웹훅, 그 외에는 SMS 공급자로 동작합니다.
type AddProviderRequest struct {
	// 공급자 엔드포인트 URL
	URL string `json:"url" validate:"required,max=2048" korean:"URL" example:"https://sms.example.com/v1/send?apikey=xxxx"`
	// 요청마다 추가할 HTTP 헤더 (있으면 structured 형식으로 저장)
	Headers map[string]string `json:"headers,omitempty" validate:"max=32" korean:"헤더"`
}

// UpdateTemplateRequest 메시지 템플릿 변경 요청
type UpdateTemplateRequest struct {
	// {placeholder} 형식의 템플릿. 빈 문자열이면 기본 템플릿으로 되돌립니다.
	Template string `json:"template" validate:"max=4096" korean:"템플릿" example:"[{status}] {summary}\n{description}"`
}
