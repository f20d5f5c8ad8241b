// Package service 프로세스 수명 동안 백그라운드에서 실행되는 서비스의 공통 계약을 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 시작 후 serviceStopCtx가 취소될 때까지 실행되는 서비스입니다.
//
// Start는 즉시 반환해야 하며, 서비스가 완전히 종료되면 serviceStopWG.Done()을 호출합니다.
// Start가 에러를 반환하는 경우에도 Done은 호출되어야 합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
