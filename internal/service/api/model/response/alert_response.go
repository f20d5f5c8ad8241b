package response

// AlertResponse 알림 수신 응답
//
// 발송 성공 여부와 관계없이 조회된 수신 번호 목록을 그대로 돌려줍니다.
type AlertResponse struct {
	// Status 항상 "ok"
	Status string `json:"status" example:"ok"`

	// SentTo 알림을 받을 수신 번호 목록 (등록되지 않은 팀이면 빈 배열)
	SentTo []string `json:"sent_to" example:"+821012345678,+821087654321"`
}
