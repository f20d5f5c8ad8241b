package routing

import (
	apperrors "github.com/darkkaiser/alert-relay/internal/pkg/errors"
)

var (
	// ErrUnknownTeam 정의되지 않은 팀 이름으로 라우팅 테이블을 변경하려 할 때 반환됩니다.
	ErrUnknownTeam = apperrors.New(apperrors.NotFound, "등록되지 않은 팀입니다")

	// ErrEmptyNumber 빈 번호를 추가하려 할 때 반환됩니다.
	ErrEmptyNumber = apperrors.New(apperrors.InvalidInput, "번호가 비어있습니다")

	// ErrInvalidDestination 번호에 '|' 또는 줄바꿈이, 설명에 줄바꿈이 포함되어 있을 때 반환됩니다.
	ErrInvalidDestination = apperrors.New(apperrors.InvalidInput, "번호 또는 설명에 허용되지 않는 문자가 포함되어 있습니다")

	// ErrNumberNotFound 팀에 등록되지 않은 번호를 삭제하려 할 때 반환됩니다.
	ErrNumberNotFound = apperrors.New(apperrors.NotFound, "팀에 등록되지 않은 번호입니다")

	// ErrProviderNotFound 범위를 벗어난 인덱스의 공급자를 삭제하려 할 때 반환됩니다.
	ErrProviderNotFound = apperrors.New(apperrors.NotFound, "해당 위치에 공급자가 존재하지 않습니다")
)
