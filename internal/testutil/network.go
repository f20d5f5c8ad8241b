// Package testutil 서버 구동 테스트에서 공통으로 사용하는 도우미를 제공합니다.
package testutil

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// FreePort 지금 비어 있는 TCP 포트를 반환합니다.
func FreePort(t TB) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("빈 포트를 찾지 못했습니다: %v", err)
	}
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port
}

// WaitForServer 지정한 포트가 연결을 받을 때까지 기다립니다.
func WaitForServer(port int, timeout time.Duration) error {
	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(port))

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", addr, 100*time.Millisecond)
		if err == nil {
			conn.Close()
			return nil
		}
		time.Sleep(10 * time.Millisecond)
	}

	return fmt.Errorf("%s 포트가 %s 안에 열리지 않았습니다", addr, timeout)
}
