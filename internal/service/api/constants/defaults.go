package constants

import "time"

// 서버 설정 기본값 상수입니다.
const (
	// DefaultReadTimeout 요청 본문을 포함한 전체 요청 읽기 제한 시간 (30초)
	DefaultReadTimeout = 30 * time.Second

	// DefaultIdleTimeout Keep-Alive 연결의 유휴 제한 시간 (120초)
	DefaultIdleTimeout = 120 * time.Second

	// DefaultWriteTimeout 응답 쓰기 제한 시간의 기본값 (5분)
	// 알림 한 건의 처리는 공급자 수와 수신 번호 수에 비례하여 길어지므로 넉넉하게 잡는다.
	DefaultWriteTimeout = 5 * time.Minute

	// ShutdownTimeout Graceful Shutdown 시 최대 대기 시간 (5초)
	ShutdownTimeout = 5 * time.Second
)
