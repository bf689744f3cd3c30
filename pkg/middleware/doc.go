// Package middleware 는 Gin 기반 HTTP API에서 사용하는 공통 미들웨어를 제공한다.
//
// JWT 인증 토큰의 발급과 검증, 도메인 등급별 속도 제한,
// 패닉 리커버리 등 API 서버 전반에서 사용하는 미들웨어를 포함한다.
package middleware
