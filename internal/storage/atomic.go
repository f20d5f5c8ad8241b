// Package storage 설정성 데이터 파일(라우팅 테이블, 메시지 템플릿)을 원자적으로 기록하는 기능을 제공합니다.
package storage

import (
	"os"
	"path/filepath"
	"time"
)

// tempFileSuffix 저장 중 생성되는 임시 파일의 이름 패턴 접미사입니다.
const tempFileSuffix = ".*.tmp"

// WriteFileAtomic data를 filename에 원자적으로 저장합니다.
//
// 같은 디렉토리에 임시 파일을 만들어 기록하고 fsync한 뒤 rename으로 교체하므로,
// 저장 도중 프로세스가 종료되어도 기존 파일 또는 새 파일 중 하나만 남습니다.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return NewErrDirectoryCreationFailed(err, dir)
	}

	tmpFile, err := os.CreateTemp(dir, filepath.Base(filename)+tempFileSuffix)
	if err != nil {
		return NewErrTempFileCreationFailed(err)
	}
	tmpPath := tmpFile.Name()

	// Windows에서는 열린 파일을 지울 수 없으므로 Close가 Remove보다 먼저 실행되어야 한다.
	defer os.Remove(tmpPath)
	defer tmpFile.Close()

	if _, err := tmpFile.Write(data); err != nil {
		return NewErrFileWriteFailed(err, filename)
	}
	if err := tmpFile.Sync(); err != nil {
		return NewErrFileWriteFailed(err, filename)
	}
	if err := tmpFile.Chmod(perm); err != nil {
		return NewErrFileWriteFailed(err, filename)
	}
	if err := tmpFile.Close(); err != nil {
		return NewErrFileWriteFailed(err, filename)
	}

	if err := renameWithRetry(tmpPath, filename); err != nil {
		return NewErrFileRenameFailed(err, filename)
	}

	// 디렉토리 엔트리 동기화는 실패해도 치명적이지 않다.
	if dirFile, err := os.Open(dir); err == nil {
		_ = dirFile.Sync()
		_ = dirFile.Close()
	}

	return nil
}

// renameWithRetry 백신이나 인덱서가 파일을 잠시 점유하는 환경(Windows)을 위해 짧게 재시도합니다.
func renameWithRetry(oldPath, newPath string) error {
	const maxRetries = 5
	const retryDelay = 10 * time.Millisecond

	var lastErr error
	for range maxRetries {
		err := os.Rename(oldPath, newPath)
		if err == nil {
			return nil
		}

		lastErr = err
		time.Sleep(retryDelay)
	}

	return lastErr
}
