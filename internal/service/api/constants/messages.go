package constants

// 클라이언트에게 반환되는 에러 메시지 상수입니다.
const (
	// ------------------------------------------------------------------------------------------------
	// 일반 HTTP 에러 (상태 코드 순)
	// ------------------------------------------------------------------------------------------------

	// 400 Bad Request
	ErrMsgBadRequest            = "잘못된 요청입니다"
	ErrMsgBadRequestInvalidJSON = "잘못된 JSON 형식입니다"
	ErrMsgBadRequestInvalidBody = "요청 본문을 파싱할 수 없습니다. JSON 형식을 확인해주세요"
	ErrMsgBadRequestReadFailed  = "요청 본문을 읽을 수 없습니다"
	ErrMsgBadRequestIndex       = "공급자 인덱스는 0 이상의 정수여야 합니다"

	// 404 Not Found
	ErrMsgNotFound         = "요청한 리소스를 찾을 수 없습니다"
	ErrMsgNotFoundTeam     = "등록되지 않은 팀입니다"
	ErrMsgNotFoundNumber   = "팀에 등록되지 않은 번호입니다"
	ErrMsgNotFoundProvider = "해당 위치에 공급자가 존재하지 않습니다"

	// 413 Request Entity Too Large
	ErrMsgRequestEntityTooLarge = "요청 본문이 너무 큽니다"

	// 415 Unsupported Media Type
	ErrMsgUnsupportedMediaType = "지원하지 않는 미디어 타입입니다"

	// 500 Internal Server Error
	ErrMsgInternalServer       = "내부 서버 오류가 발생했습니다"
	ErrMsgInternalServerConfig = "알림 템플릿 설정에 오류가 있습니다. 관리자에게 문의해 주세요"
	ErrMsgInternalServerStore  = "저장소를 읽거나 쓰는 중 오류가 발생했습니다"
)

// 내부 로깅을 위한 메시지 상수입니다.
const (
	// ------------------------------------------------------------------------------------------------
	// 서비스 생명주기
	// ------------------------------------------------------------------------------------------------

	LogMsgServiceStarting       = "API 서비스 시작중..."
	LogMsgServiceStarted        = "API 서비스 시작됨"
	LogMsgServiceAlreadyStarted = "API 서비스가 이미 시작됨!!!"
	LogMsgServiceStopping       = "API 서비스 중지중..."
	LogMsgServiceStopped        = "API 서비스 중지됨"
	LogMsgServiceUnexpectedExit = "API 서비스가 예기치 않게 종료되었습니다"

	LogMsgServiceHTTPServerStarting      = "API 서비스 > http 서버 시작"
	LogMsgServiceHTTPServerStopped       = "API 서비스 > http 서버 중지됨"
	LogMsgServiceHTTPServerShutdownError = "API 서비스 > http 서버 종료 중 오류 발생"
	LogMsgServiceHTTPServerFatalError    = "API 서비스 > http 서버를 구성하는 중에 치명적인 오류가 발생하였습니다."

	// ------------------------------------------------------------------------------------------------
	// HTTP 처리
	// ------------------------------------------------------------------------------------------------

	LogMsgHTTPRequest            = "HTTP 요청"
	LogMsgHTTP4xxClientError     = "HTTP 4xx: 클라이언트 요청 오류"
	LogMsgHTTP5xxServerError     = "HTTP 5xx: 서버 내부 오류"
	LogMsgPanicRecovered         = "PANIC RECOVERED"
	LogMsgUnsupportedContentType = "지원하지 않는 Content-Type 요청"

	// ------------------------------------------------------------------------------------------------
	// 핸들러
	// ------------------------------------------------------------------------------------------------

	LogMsgHealthCheck         = "헬스체크 요청"
	LogMsgVersionInfo         = "버전 정보 요청"
	LogMsgAlertReceived       = "알림 수신"
	LogMsgAlertProcessed      = "알림 처리 완료"
	LogMsgAlertFailed         = "알림 처리 실패"
	LogMsgRoutingNumberAdded  = "수신 번호 추가"
	LogMsgRoutingNumberRemove = "수신 번호 삭제"
	LogMsgProviderAdded       = "공급자 추가"
	LogMsgProviderRemoved     = "공급자 삭제"
	LogMsgTemplateUpdated     = "메시지 템플릿 변경"
)
