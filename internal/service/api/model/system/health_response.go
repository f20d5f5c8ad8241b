package system

// HealthResponse 서버 헬스체크 응답
type HealthResponse struct {
	// 전체 상태: 의존성 중 하나라도 비정상이면 unhealthy
	Status string `json:"status" example:"healthy"`
	// 서버 가동 시간(초)
	Uptime int64 `json:"uptime" example:"3600"`
	// 의존성별 헬스체크 결과 (키: routing_store, template_store)
	Dependencies map[string]DependencyStatus `json:"dependencies"`
}
