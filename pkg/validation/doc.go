// Package validation 설정 파일과 관리 API 요청으로 들어오는 값의 형식을 검사합니다.
//
// 모든 함수는 유효하지 않은 입력에 대해 원인을 담은 error를 반환하며 부수 효과가 없습니다.
package validation
