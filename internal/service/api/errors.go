package api

import (
	apperrors "github.com/darkkaiser/alert-relay/internal/pkg/errors"
)

var (
	// ErrRelayerNotInitialized 알림 처리 파이프라인 없이 서비스를 시작하려 할 때 반환하는 에러입니다.
	ErrRelayerNotInitialized = apperrors.New(apperrors.Internal, "알림 처리 파이프라인이 초기화되지 않았습니다")
)
