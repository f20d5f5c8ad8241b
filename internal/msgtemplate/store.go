// Package msgtemplate 알림 메시지 템플릿을 보관합니다.
//
// 저장된 템플릿이 없으면 호출하는 쪽에서 DefaultTemplate을 사용합니다.
package msgtemplate

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/darkkaiser/alert-relay/internal/storage"
)

// DefaultTemplate 사용자 템플릿이 없을 때 적용되는 기본 템플릿입니다.
const DefaultTemplate = "{status} {summary}"

// Store 템플릿 저장소입니다. Get은 템플릿이 없으면 빈 문자열을 반환합니다.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, template string) error
}

// FileStore 템플릿을 하나의 텍스트 파일로 저장합니다. 빈 템플릿을 저장하면 파일을 삭제합니다.
type FileStore struct {
	path string

	mu sync.Mutex
}

var _ Store = (*FileStore)(nil)

// NewFileStore 지정된 경로의 파일을 사용하는 템플릿 저장소를 생성합니다.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get 앞뒤 공백을 제거한 템플릿을 반환합니다.
func (s *FileStore) Get(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", storage.NewErrFileReadFailed(err, s.path)
	}

	return strings.TrimSpace(string(data)), nil
}

func (s *FileStore) Set(ctx context.Context, template string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if template == "" {
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			return storage.NewErrFileWriteFailed(err, s.path)
		}
		return nil
	}

	return storage.WriteFileAtomic(s.path, []byte(template), 0644)
}

// Resolve 저장된 템플릿을 반환하고, 없으면 DefaultTemplate을 반환합니다.
func Resolve(ctx context.Context, s Store) (string, error) {
	tpl, err := s.Get(ctx)
	if err != nil {
		return "", err
	}
	if tpl == "" {
		return DefaultTemplate, nil
	}
	return tpl, nil
}
