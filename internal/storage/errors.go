package storage

import (
	"fmt"

	apperrors "github.com/darkkaiser/alert-relay/internal/pkg/errors"
)

// NewErrFileReadFailed 저장 파일을 읽는 데 실패했을 때 반환하는 에러를 생성합니다.
func NewErrFileReadFailed(err error, filename string) error {
	return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("파일 읽기 실패: %s", filename))
}

// NewErrDirectoryCreationFailed 저장 디렉토리 생성에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrDirectoryCreationFailed(err error, dir string) error {
	return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("파일 저장 실패: 디렉토리를 생성할 수 없습니다 (%s)", dir))
}

// NewErrTempFileCreationFailed 임시 파일 생성에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrTempFileCreationFailed(err error) error {
	return apperrors.Wrap(err, apperrors.System, "파일 저장 실패: 임시 파일을 생성할 수 없습니다")
}

// NewErrFileWriteFailed 임시 파일 기록(쓰기, 동기화, 닫기)에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrFileWriteFailed(err error, filename string) error {
	return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("파일 저장 실패: 데이터를 기록할 수 없습니다 (%s)", filename))
}

// NewErrFileRenameFailed 임시 파일을 최종 파일로 교체하는 데 실패했을 때 반환하는 에러를 생성합니다.
func NewErrFileRenameFailed(err error, filename string) error {
	return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("파일 저장 실패: 파일을 교체할 수 없습니다 (%s)", filename))
}
