package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Tier 는 요청을 보낸 도메인의 등급.
type Tier string

const (
	// TierFree 는 무료 도메인 등급.
	TierFree Tier = "free"
	// TierPremium 은 프리미엄 도메인 등급.
	TierPremium Tier = "premium"
)

// ctxKeyTier 는 도메인 등급을 컨텍스트에 저장할 때 사용하는 키.
const ctxKeyTier = "tier"

// SetTier 는 Gin 컨텍스트에 도메인 등급을 저장한다.
// 도메인 조회에 성공한 CORS 게이트가 호출한다.
func SetTier(c *gin.Context, tier Tier) {
	c.Set(ctxKeyTier, tier)
}

// GetTier 는 Gin 컨텍스트에서 도메인 등급을 반환한다.
// 설정되어 있지 않으면 free로 간주한다.
func GetTier(c *gin.Context) Tier {
	v, _ := c.Get(ctxKeyTier)
	if tier, ok := v.(Tier); ok {
		return tier
	}
	return TierFree
}

// KeyedLimiter 는 키별로 독립된 토큰 버킷을 관리하는 속도 제한기.
type KeyedLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewKeyedLimiter 는 키당 분당 perMinute 회를 허용하는 속도 제한기를 생성한다.
func NewKeyedLimiter(perMinute int) *KeyedLimiter {
	return &KeyedLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(perMinute) / 60,
		burst:    perMinute,
	}
}

// Allow 는 해당 키의 요청을 허용할지를 즉시 반환한다.
func (l *KeyedLimiter) Allow(key string) bool {
	return l.getLimiter(key).Allow()
}

// getLimiter 는 키에 대응하는 제한기를 반환하고, 없으면 생성한다.
func (l *KeyedLimiter) getLimiter(key string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[key]
	l.mu.RUnlock()
	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// 쓰기 락 획득 사이에 다른 고루틴이 먼저 생성했을 수 있다
	if limiter, exists = l.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(l.limit, l.burst)
	l.limiters[key] = limiter
	return limiter
}

// RateLimit 는 클라이언트 IP별로 요청 횟수를 제한하는 Gin 미들웨어를 반환한다.
// 도메인 등급이 premium이면 premium 제한기를, 그 외에는 free 제한기를 사용한다.
// 한도를 초과한 요청은 429로 중단된다.
func RateLimit(free, premium *KeyedLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := free
		message := "1분에 열 번만 요청할 수 있습니다"
		if GetTier(c) == TierPremium {
			limiter = premium
			message = "1분에 천 번만 요청할 수 있습니다"
		}

		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": message,
			})
			return
		}

		c.Next()
	}
}
