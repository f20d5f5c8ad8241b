package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	apperrors "github.com/darkkaiser/alert-relay/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("새 파일 생성", func(t *testing.T) {
		t.Parallel()

		filename := filepath.Join(t.TempDir(), "sub", "numbers.txt")
		require.NoError(t, WriteFileAtomic(filename, []byte("[all]\n"), 0644))

		data, err := os.ReadFile(filename)
		require.NoError(t, err)
		assert.Equal(t, "[all]\n", string(data))
	})

	t.Run("기존 파일 덮어쓰기", func(t *testing.T) {
		t.Parallel()

		filename := filepath.Join(t.TempDir(), "template.txt")
		require.NoError(t, os.WriteFile(filename, []byte("old"), 0644))
		require.NoError(t, WriteFileAtomic(filename, []byte("new"), 0644))

		data, err := os.ReadFile(filename)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("임시 파일이 남지 않음", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, WriteFileAtomic(filepath.Join(dir, "numbers.txt"), []byte("x"), 0644))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "numbers.txt", entries[0].Name())
	})

	t.Run("디렉토리 생성 실패", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

		err := WriteFileAtomic(filepath.Join(blocker, "numbers.txt"), []byte("x"), 0644)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.System))
	})
}

func TestWriteFileAtomic_Concurrent(t *testing.T) {
	t.Parallel()

	filename := filepath.Join(t.TempDir(), "numbers.txt")

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, WriteFileAtomic(filename, []byte("same content"), 0644))
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "same content", string(data))
}
