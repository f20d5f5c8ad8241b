package system

// DependencyStatus 라우팅/템플릿 저장소 등 의존성 하나의 헬스체크 결과
type DependencyStatus struct {
	// 헬스체크 상태: healthy, unhealthy
	Status string `json:"status" example:"healthy"`
	// 확인에 걸린 시간(ms)
	LatencyMs int64 `json:"latency_ms" example:"1"`
	// 상태 상세 정보 또는 에러 메시지
	Message string `json:"message,omitempty" example:"정상 작동 중"`
}
