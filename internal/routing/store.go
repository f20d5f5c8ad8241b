// Package routing 팀별 수신 번호와 알림 공급자 목록(라우팅 테이블)을 관리합니다.
package routing

import "context"

// Store 라우팅 테이블 저장소입니다.
//
// Load는 매번 저장소의 최신 상태를 읽어 새 Table을 반환하며, 반환된 Table을 수정해도 저장소에는 반영되지 않습니다.
type Store interface {
	Load(ctx context.Context) (*Table, error)
	Save(ctx context.Context, table *Table) error

	// Update 읽기-수정-저장을 하나의 임계 구역에서 수행합니다. fn이 에러를 반환하면 저장하지 않습니다.
	Update(ctx context.Context, fn func(*Table) error) error

	// Check 저장소를 변경하지 않고 읽을 수 있는 상태인지 확인합니다. 헬스체크에서 사용합니다.
	Check(ctx context.Context) error
}
