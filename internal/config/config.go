// Package config alert-relay의 설정을 로드하고 검증합니다.
//
// 설정은 다음 순서로 병합되며 나중 단계가 우선합니다.
//
//  1. 코드에 정의된 기본값
//  2. JSON 설정 파일 (alert-relay.json, 없으면 건너뜀)
//  3. RELAY_ 접두사 환경 변수 (예: RELAY_DISPATCH__SEND_TIMEOUT=5s → dispatch.send_timeout)
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/alert-relay/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션 식별자입니다. 로그 파일명과 Server 헤더에 사용됩니다.
	AppName string = "alert-relay"

	// DefaultFilename 실행 인자로 경로가 주어지지 않을 때 읽는 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	envPrefix = "RELAY_"
)

const (
	DefaultNumbersFile      = "numbers.txt"
	DefaultTemplateFile     = "template.txt"
	DefaultSendTimeout      = 10 * time.Second
	DefaultProviderInterval = 1 * time.Second
	DefaultListenPort       = 5000
	DefaultWriteTimeout     = 5 * time.Minute
)

// newDefaultConfig 설정 파일과 환경 변수가 모두 비어 있을 때 사용할 값을 반환합니다.
func newDefaultConfig() AppConfig {
	return AppConfig{
		Debug: false,
		Storage: StorageConfig{
			NumbersFile:  DefaultNumbersFile,
			TemplateFile: DefaultTemplateFile,
		},
		Dispatch: DispatchConfig{
			SendTimeout:      DefaultSendTimeout,
			ProviderInterval: DefaultProviderInterval,
		},
		RelayAPI: RelayAPIConfig{
			WS: WSConfig{
				ListenPort:   DefaultListenPort,
				WriteTimeout: DefaultWriteTimeout,
			},
			CORS: CORSConfig{
				AllowOrigins: []string{"*"},
			},
		},
	}
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 AppConfig를 생성합니다.
// 파일이 존재하지 않으면 기본값과 환경 변수만으로 설정을 구성합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "기본 설정 로드에 실패했습니다")
	}

	if _, err := os.Stat(filename); err == nil {
		if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
			return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
		}
	} else if !os.IsNotExist(err) {
		return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일에 접근할 수 없습니다: '%s'", filename))
	}

	if err := k.Load(env.Provider(envPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			ErrorUnused:      true,
			WeaklyTypedInput: true,
		},
	}

	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 구조체로 변환하는데 실패했습니다")
	}

	if err := appConfig.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}

// normalizeEnvKey 환경 변수 이름을 설정 키로 변환합니다.
// 이중 언더스코어(__)는 계층 구분자(.)가 됩니다.
//
//	RELAY_RELAY_API__WS__LISTEN_PORT → relay_api.ws.listen_port
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, envPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}
