package request

import (
	"strings"
	"testing"

	"github.com/darkkaiser/alert-relay/internal/service/api/handler"
	"github.com/stretchr/testify/assert"
)

func TestAddNumberRequest_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     AddNumberRequest
		wantErr string
	}{
		{"정상", AddNumberRequest{Number: "+15550001", Description: "on-call"}, ""},
		{"설명 생략", AddNumberRequest{Number: "+15550001"}, ""},
		{"번호 누락", AddNumberRequest{}, "번호는 필수입니다"},
		{"파이프 문자", AddNumberRequest{Number: "+1555|0001"}, "번호에 사용할 수 없는 문자가 포함되어 있습니다"},
		{"번호 길이 초과", AddNumberRequest{Number: strings.Repeat("1", 33)}, "번호는 최대 32자까지 입력 가능합니다"},
		{"설명 길이 초과", AddNumberRequest{Number: "1", Description: strings.Repeat("가", 101)}, "설명은 최대 100자까지 입력 가능합니다"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := handler.ValidateRequest(&tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.wantErr, handler.FormatValidationError(err))
		})
	}
}

func TestAddProviderRequest_Validation(t *testing.T) {
	t.Parallel()

	assert.NoError(t, handler.ValidateRequest(&AddProviderRequest{URL: "https://hooks.example.com/hooks/abc"}))
	assert.NoError(t, handler.ValidateRequest(&AddProviderRequest{URL: "https://sms.example.com", Headers: map[string]string{"Authorization": "Bearer x"}}))

	err := handler.ValidateRequest(&AddProviderRequest{})
	assert.Equal(t, "URL는 필수입니다", handler.FormatValidationError(err))
}

func TestUpdateTemplateRequest_Validation(t *testing.T) {
	t.Parallel()

	assert.NoError(t, handler.ValidateRequest(&UpdateTemplateRequest{}))
	assert.NoError(t, handler.ValidateRequest(&UpdateTemplateRequest{Template: "{status} {summary}"}))
	assert.Error(t, handler.ValidateRequest(&UpdateTemplateRequest{Template: strings.Repeat("x", 4097)}))
}
