package config

import (
	"fmt"
	"slices"
	"time"

	apperrors "github.com/darkkaiser/alert-relay/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// AppConfig 애플리케이션의 모든 설정을 포함하는 최상위 구조체
type AppConfig struct {
	Debug    bool           `json:"debug"`
	Storage  StorageConfig  `json:"storage"`
	Dispatch DispatchConfig `json:"dispatch"`
	RelayAPI RelayAPIConfig `json:"relay_api"`
}

func (c *AppConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c.Storage, "저장소(storage)"); err != nil {
		return err
	}
	if err := checkStruct(v, c.Dispatch, "발송(dispatch)"); err != nil {
		return err
	}
	if err := c.RelayAPI.validate(v); err != nil {
		return err
	}
	return nil
}

// VerifyRecommendations 강제하지는 않지만 운영상 주의가 필요한 설정에 대한 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.RelayAPI.WS.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.RelayAPI.WS.ListenPort))
	}

	// 한 건의 알림 처리 시간이 쓰기 타임아웃보다 길어지면 응답이 끊긴다.
	if c.RelayAPI.WS.WriteTimeout < c.Dispatch.SendTimeout+c.Dispatch.ProviderInterval {
		warnings = append(warnings, fmt.Sprintf("쓰기 타임아웃(%s)이 공급자 1개의 발송 시간(%s)보다 짧습니다", c.RelayAPI.WS.WriteTimeout, c.Dispatch.SendTimeout+c.Dispatch.ProviderInterval))
	}

	return warnings
}

// StorageConfig 라우팅 테이블과 메시지 템플릿 파일의 경로
type StorageConfig struct {
	NumbersFile  string `json:"numbers_file" validate:"required,parent_dir"`
	TemplateFile string `json:"template_file" validate:"required,parent_dir"`
}

// DispatchConfig 공급자 발송 정책
type DispatchConfig struct {
	SendTimeout      time.Duration `json:"send_timeout" validate:"gt=0"`
	ProviderInterval time.Duration `json:"provider_interval" validate:"gte=0"`
}

// RelayAPIConfig 알림 수신 및 관리 API 서버 설정
type RelayAPIConfig struct {
	WS   WSConfig   `json:"ws"`
	CORS CORSConfig `json:"cors"`
}

func (c *RelayAPIConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c.WS, "웹 서버(relay_api.ws)"); err != nil {
		return err
	}
	if err := c.CORS.validate(v); err != nil {
		return err
	}
	return nil
}

// WSConfig 웹 서버의 포트, 타임아웃, TLS 설정
type WSConfig struct {
	ListenPort   int           `json:"listen_port" validate:"min=1,max=65535"`
	WriteTimeout time.Duration `json:"write_timeout" validate:"gt=0"`
	TLSServer    bool          `json:"tls_server"`
	TLSCertFile  string        `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,readable_file"`
	TLSKeyFile   string        `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,readable_file"`
}

// CORSConfig 관리 API의 교차 출처 리소스 공유 정책
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"required,min=1,dive,cors_origin"`
}

func (c *CORSConfig) validate(v *validator.Validate) error {
	if slices.Contains(c.AllowOrigins, "*") && len(c.AllowOrigins) > 1 {
		return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다")
	}
	return checkStruct(v, c, "CORS(relay_api.cors)")
}
