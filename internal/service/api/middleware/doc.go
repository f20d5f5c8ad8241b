// Package middleware 알림 수신 및 관리 API 서버에서 사용하는 Echo 미들웨어를 제공합니다.
//
//   - PanicRecovery: 핸들러 패닉을 500 응답으로 바꾸고 스택을 기록
//   - HTTPLogger: 요청/응답 접근 로그 (쿼리의 apikey, token 등은 마스킹)
//   - ValidateContentType: 관리 API의 JSON 요청 본문 형식 검사
//   - NewLogger: Echo 내부 로그를 logrus로 연결
//
// 알림 수신 엔드포인트(/alert/:team)에는 Content-Type 검사를 적용하지 않습니다.
//
//	e := echo.New()
//	e.Logger = middleware.NewLogger()
//	e.Use(middleware.PanicRecovery())
//	e.Use(middleware.HTTPLogger())
package middleware
