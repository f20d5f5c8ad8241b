package config

import (
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/alert-relay/internal/pkg/errors"
	"github.com/darkkaiser/alert-relay/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// newValidator JSON 태그명을 필드명으로 사용하고 커스텀 규칙이 등록된 Validator를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("cors_origin", validateCORSOrigin); err != nil {
		panic(fmt.Sprintf("'cors_origin' 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}
	if err := v.RegisterValidation("parent_dir", validateParentDir); err != nil {
		panic(fmt.Sprintf("'parent_dir' 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}
	if err := v.RegisterValidation("readable_file", validateReadableFile); err != nil {
		panic(fmt.Sprintf("'readable_file' 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}

	return v
}

func validateCORSOrigin(fl validator.FieldLevel) bool {
	return validation.ValidateCORSOrigin(fl.Field().String()) == nil
}

// validateParentDir 저장소 파일은 최초 실행 시 생성되므로 파일이 아닌 상위 디렉터리의 존재를 확인한다.
func validateParentDir(fl validator.FieldLevel) bool {
	return validation.ValidateParentDir(fl.Field().String()) == nil
}

func validateReadableFile(fl validator.FieldLevel) bool {
	return validation.ValidateFile(fl.Field().String()) == nil
}

// checkStruct 구조체를 검증하고 첫 번째 위반 항목을 사용자 친화적인 에러로 변환합니다.
func checkStruct(v *validator.Validate, s any, contextName string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
	}

	fe := validationErrors[0]
	switch fe.Tag() {
	case "cors_origin":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port])", fe.Value()))
	case "parent_dir":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s: '%s' 파일을 생성할 디렉터리가 존재하지 않습니다: '%v'", contextName, fe.Field(), fe.Value()))
	case "readable_file":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s: '%s' 파일을 찾을 수 없습니다: '%v'", contextName, fe.Field(), fe.Value()))
	case "required_if", "required":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s: '%s' 값은 필수입니다", contextName, fe.Field()))
	}

	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s=%s, 값: %v)", contextName, fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
}
