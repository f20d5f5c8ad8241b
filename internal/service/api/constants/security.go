package constants

import "time"

// 보안 관련 상수입니다.
const (
	// DefaultMaxBodySize 요청 본문의 최대 크기 (1MB)
	// Alertmanager는 그룹으로 묶인 알림을 한 번에 보내므로 일반 API보다 넉넉하게 둔다.
	DefaultMaxBodySize = "1M"

	// DefaultReadHeaderTimeout HTTP 헤더 읽기 최대 대기 시간 (10초)
	// 헤더를 매우 느리게 전송하는 클라이언트가 연결을 점유하는 것을 막는다.
	DefaultReadHeaderTimeout = 10 * time.Second
)

// SensitiveQueryParams 로그 기록 시 마스킹 처리해야 할 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	"api_key",
	"apikey",
	"password",
	"token",
	"secret",
}
