package handler

import (
	"errors"

	apperrors "github.com/darkkaiser/alert-relay/internal/pkg/errors"
	"github.com/darkkaiser/alert-relay/internal/routing"
	"github.com/darkkaiser/alert-relay/internal/service/api/constants"
	"github.com/darkkaiser/alert-relay/internal/service/api/httputil"
)

// NewErrInvalidBody 요청 본문이 올바른 JSON이 아닐 때 반환하는 에러를 생성합니다.
func NewErrInvalidBody() error {
	return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidBody)
}

// NewErrValidationFailed 요청 값 검증 실패 에러를 생성합니다.
func NewErrValidationFailed(msg string) error {
	return httputil.NewBadRequestError(msg)
}

// NewErrInvalidProviderIndex 공급자 인덱스가 정수가 아닐 때 반환하는 에러를 생성합니다.
func NewErrInvalidProviderIndex() error {
	return httputil.NewBadRequestError(constants.ErrMsgBadRequestIndex)
}

// toHTTPError 저장소 변경 중 발생한 에러를 HTTP 에러로 변환합니다.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, routing.ErrUnknownTeam):
		return httputil.NewNotFoundError(constants.ErrMsgNotFoundTeam)
	case errors.Is(err, routing.ErrNumberNotFound):
		return httputil.NewNotFoundError(constants.ErrMsgNotFoundNumber)
	case errors.Is(err, routing.ErrProviderNotFound):
		return httputil.NewNotFoundError(constants.ErrMsgNotFoundProvider)
	case apperrors.Is(err, apperrors.InvalidInput):
		var appErr *apperrors.AppError
		if apperrors.As(err, &appErr) {
			return httputil.NewBadRequestError(appErr.Message())
		}
		return httputil.NewBadRequestError(constants.ErrMsgBadRequest)
	default:
		return httputil.NewInternalServerError(constants.ErrMsgInternalServerStore)
	}
}
