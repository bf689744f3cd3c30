// Package apiserver 는 NodeBird 오픈 API의 HTTP 서버를 구현한다.
// 등록된 도메인에 JWT 토큰을 발급하고, 발급된 토큰으로
// 게시글·해시태그·팔로우 관계를 조회하는 엔드포인트를 제공한다.
package apiserver

import (
	"database/sql"
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"

	"github.com/gin-gonic/gin"
	_ "modernc.org/sqlite"

	apidb "github.com/Gyeongm1n/api-server/internal/apiserver/db"
	"github.com/Gyeongm1n/api-server/pkg/middleware"
	"github.com/Gyeongm1n/api-server/pkg/migration"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// 등급별 분당 요청 허용 횟수.
const (
	freeRequestsPerMinute    = 10
	premiumRequestsPerMinute = 1000
)

// Server 는 NodeBird 오픈 API의 HTTP 서버.
type Server struct {
	// router 는 Gin의 HTTP 라우터.
	router *gin.Engine
	// port 는 서버의 리슨 포트.
	port string
	// queries 는 sqlc가 생성한 쿼리 실행 객체.
	queries *apidb.Queries
	// db 는 SQLite 데이터베이스 연결.
	db *sql.DB
	// jwtSecret 은 JWT 서명용 비밀키.
	jwtSecret string
}

// NewServer 는 새 API 서버를 생성한다.
// SQLite 데이터베이스를 열고 마이그레이션을 적용한다.
func NewServer(port string) (*Server, error) {
	sqlDB, err := OpenDB(getEnvOr("DB_PATH", "./nodebird.db"))
	if err != nil {
		return nil, err
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "dev-secret-key"
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())

	s := &Server{
		router:    router,
		port:      port,
		queries:   apidb.New(sqlDB),
		db:        sqlDB,
		jwtSecret: jwtSecret,
	}
	s.setupRoutes()

	return s, nil
}

// OpenDB 는 SQLite 데이터베이스를 열고 마이그레이션을 적용한다.
// 서버와 시드 도구가 같은 초기화 경로를 사용한다.
func OpenDB(path string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("데이터베이스 연결에 실패: %w", err)
	}

	if err := migration.Run(sqlDB, migrationsFS, "migrations"); err != nil {
		return nil, fmt.Errorf("스키마 적용에 실패: %w", err)
	}
	return sqlDB, nil
}

// Run 은 HTTP 서버를 기동한다.
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// setupRoutes 는 API 라우팅을 설정한다.
// 모든 요청은 CORS 게이트를 먼저 지나고, 각 엔드포인트는
// 속도 제한과 (토큰 발급을 제외하고) 토큰 검증을 거친다.
func (s *Server) setupRoutes() {
	s.router.Use(s.corsGate())

	free := middleware.NewKeyedLimiter(freeRequestsPerMinute)
	premium := middleware.NewKeyedLimiter(premiumRequestsPerMinute)
	limit := middleware.RateLimit(free, premium)
	auth := middleware.JWTAuth(s.jwtSecret)

	// 토큰 발급 (유일한 비인증 엔드포인트)
	s.router.POST("/token", limit, s.handleIssueToken())
	// 토큰 검증 확인용
	s.router.GET("/test", limit, auth, s.handleIntrospect())
	// 내 게시글 목록
	s.router.GET("/posts/my", limit, auth, s.handleMyPosts())
	// 해시태그로 게시글 검색
	s.router.GET("/posts/hashtag/:hashtag", limit, auth, s.handlePostsByHashtag())
	// 팔로워/팔로잉 목록
	s.router.GET("/:nick/follow", limit, auth, s.handleFollow())

	// 헬스 체크
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "apiserver"})
	})
}

// corsGate 는 요청의 Origin 호스트로 등록 도메인을 조회해
// 등급을 컨텍스트에 기록하고 해당 오리진에 한해 CORS를 허용하는 미들웨어를 반환한다.
// 등록되지 않은 오리진에는 CORS 헤더를 붙이지 않고 그대로 진행한다.
func (s *Server) corsGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		host := origin
		if u, err := url.Parse(origin); err == nil && u.Host != "" {
			host = u.Host
		}

		domain, err := s.queries.GetDomainByHost(c.Request.Context(), host)
		if err == sql.ErrNoRows {
			c.Next()
			return
		}
		if err != nil {
			log.Printf("도메인 조회 에러: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"code":    http.StatusInternalServerError,
				"message": "서버 에러",
			})
			return
		}

		// 저장된 type이 정확히 free일 때만 free, 그 외엔 premium
		tier := middleware.TierPremium
		if domain.Type == string(middleware.TierFree) {
			tier = middleware.TierFree
		}
		middleware.SetTier(c, tier)

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// getEnvOr 는 환경 변수를 조회하고, 설정되어 있지 않으면 기본값을 반환한다.
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
