package constants

// 시스템 시작/구동 시 발생할 수 있는 크리티컬한 패닉 메시지 상수입니다.
const (
	// PanicMsgAppConfigRequired 패닉 메시지: AppConfig 필수
	PanicMsgAppConfigRequired = "AppConfig는 필수입니다"

	// PanicMsgPipelineRequired 패닉 메시지: Pipeline 필수
	PanicMsgPipelineRequired = "Pipeline은 필수입니다"

	// PanicMsgRoutingStoreRequired 패닉 메시지: 라우팅 저장소 필수
	PanicMsgRoutingStoreRequired = "routing.Store는 필수입니다"

	// PanicMsgTemplateStoreRequired 패닉 메시지: 템플릿 저장소 필수
	PanicMsgTemplateStoreRequired = "msgtemplate.Store는 필수입니다"
)
