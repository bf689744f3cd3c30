package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims 는 발급된 토큰의 클레임(페이로드)을 나타낸다.
// 토큰 소유 사용자의 ID와 닉네임을 담으며, 서버 측 세션 없이 토큰만으로 완결된다.
type JWTClaims struct {
	jwt.RegisteredClaims
	// UserID 는 토큰을 발급받은 사용자의 고유 식별자.
	UserID int64 `json:"id"`
	// Nick 은 사용자의 닉네임.
	Nick string `json:"nick"`
}

// tokenIssuer 는 발급하는 토큰의 iss 클레임 값.
const tokenIssuer = "nodebird"

// tokenTTL 은 발급하는 토큰의 유효 기간.
const tokenTTL = 30 * time.Minute

// ctxKeyClaims 는 디코딩된 클레임을 컨텍스트에 저장할 때 사용하는 키.
const ctxKeyClaims = "claims"

// GenerateJWT 는 사용자 정보로부터 JWT 토큰을 생성한다.
// 토큰 발급 엔드포인트가 클라이언트 비밀키 검증 후에 호출한다.
func GenerateJWT(secret string, userID int64, nick string) (string, error) {
	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    tokenIssuer,
		},
		UserID: userID,
		Nick:   nick,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("JWT 토큰 서명에 실패: %w", err)
	}
	return signed, nil
}

// JWTAuth 는 JWT 토큰을 검증하는 Gin 미들웨어를 반환한다.
// 서명, 유효 기간, 발급자를 검증하고 성공하면 컨텍스트에 디코딩된 클레임을 저장한다.
// 실패하면 핸들러를 실행하지 않고 401로 요청을 중단한다.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": "Authorization 헤더가 필요합니다",
			})
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": "Bearer 토큰 형식이 아닙니다",
			})
			return
		}

		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
			return []byte(secret), nil
		}, jwt.WithIssuer(tokenIssuer))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": "유효하지 않은 토큰입니다",
			})
			return
		}

		c.Set(ctxKeyClaims, claims)
		c.Next()
	}
}

// GetClaims 는 Gin 컨텍스트에서 디코딩된 클레임을 반환한다.
// JWTAuth 미들웨어가 먼저 적용되어 있어야 하며, 없으면 nil을 반환한다.
func GetClaims(c *gin.Context) *JWTClaims {
	v, _ := c.Get(ctxKeyClaims)
	if claims, ok := v.(*JWTClaims); ok {
		return claims
	}
	return nil
}

// GetUserID 는 Gin 컨텍스트에서 인증된 사용자의 ID를 반환한다. 없으면 0.
func GetUserID(c *gin.Context) int64 {
	if claims := GetClaims(c); claims != nil {
		return claims.UserID
	}
	return 0
}
