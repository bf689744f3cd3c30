package apiserver

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apidb "github.com/Gyeongm1n/api-server/internal/apiserver/db"
	"github.com/Gyeongm1n/api-server/pkg/middleware"
)

// tokenRequest 는 토큰 발급 요청의 JSON 구조.
type tokenRequest struct {
	// ClientSecret 은 도메인 등록 시 발급된 클라이언트 비밀키.
	ClientSecret string `json:"clientSecret" binding:"required"`
}

// postResponse 는 게시글의 JSON 응답 구조.
type postResponse struct {
	// ID 는 게시글의 고유 식별자.
	ID int64 `json:"id"`
	// UserID 는 작성자의 사용자 ID.
	UserID int64 `json:"userId"`
	// Content 는 게시글 내용.
	Content string `json:"content"`
	// CreatedAt 은 작성 일시.
	CreatedAt string `json:"createdAt"`
}

// userResponse 는 팔로워/팔로잉 목록에 들어가는 사용자의 JSON 응답 구조.
type userResponse struct {
	// ID 는 사용자의 고유 식별자.
	ID int64 `json:"id"`
	// Nick 은 사용자의 닉네임.
	Nick string `json:"nick"`
}

// toPostResponse 는 DB 행을 JSON 응답으로 변환한다.
func toPostResponse(p apidb.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Content:   p.Content,
		CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// handleIssueToken 은 클라이언트 비밀키를 검증하고 JWT 토큰을 발급하는 핸들러를 반환한다.
// 비밀키가 어느 도메인에도 해당하지 않으면 401을 반환한다.
func (s *Server) handleIssueToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req tokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": "권한 없음",
			})
			return
		}

		domain, err := s.queries.GetDomainBySecret(c.Request.Context(), req.ClientSecret)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": "권한 없음",
			})
			return
		}
		if err != nil {
			log.Printf("도메인 조회 에러: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    http.StatusInternalServerError,
				"message": "서버 에러",
			})
			return
		}

		token, err := middleware.GenerateJWT(s.jwtSecret, domain.UserID, domain.Nick)
		if err != nil {
			log.Printf("JWT 생성 에러: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    http.StatusInternalServerError,
				"message": "서버 에러",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"code":    http.StatusOK,
			"message": "토큰 발급",
			"token":   token,
		})
	}
}

// handleIntrospect 는 검증이 끝난 토큰의 클레임을 그대로 돌려주는 핸들러를 반환한다.
func (s *Server) handleIntrospect() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := middleware.GetClaims(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": "유효하지 않은 토큰입니다",
			})
			return
		}
		c.JSON(http.StatusOK, claims)
	}
}

// handleMyPosts 는 토큰 소유 사용자의 게시글 목록을 반환하는 핸들러를 반환한다.
// 게시글이 없으면 빈 목록으로 200을 반환한다.
func (s *Server) handleMyPosts() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)

		posts, err := s.queries.ListPostsByUserID(c.Request.Context(), userID)
		if err != nil {
			log.Printf("게시글 조회 에러: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    http.StatusInternalServerError,
				"message": "서버 에러",
			})
			return
		}

		payload := make([]postResponse, 0, len(posts))
		for _, p := range posts {
			payload = append(payload, toPostResponse(p))
		}

		c.JSON(http.StatusOK, gin.H{
			"code":    http.StatusOK,
			"payload": payload,
		})
	}
}

// handlePostsByHashtag 는 경로의 해시태그 제목으로 게시글을 검색하는 핸들러를 반환한다.
// 해시태그가 없으면 404, 연결된 게시글이 없으면 빈 목록으로 200을 반환한다.
func (s *Server) handlePostsByHashtag() gin.HandlerFunc {
	return func(c *gin.Context) {
		title := c.Param("hashtag")

		hashtag, err := s.queries.GetHashtagByTitle(c.Request.Context(), title)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{
				"code":    http.StatusNotFound,
				"message": "검색 결과가 없습니다",
			})
			return
		}
		if err != nil {
			log.Printf("해시태그 조회 에러: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    http.StatusInternalServerError,
				"message": "서버 에러",
			})
			return
		}

		posts, err := s.queries.ListPostsByHashtagID(c.Request.Context(), hashtag.ID)
		if err != nil {
			log.Printf("해시태그 게시글 조회 에러: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    http.StatusInternalServerError,
				"message": "서버 에러",
			})
			return
		}

		payload := make([]postResponse, 0, len(posts))
		for _, p := range posts {
			payload = append(payload, toPostResponse(p))
		}

		c.JSON(http.StatusOK, gin.H{
			"code":    http.StatusOK,
			"payload": payload,
		})
	}
}

// handleFollow 는 경로의 닉네임으로 사용자를 찾아
// 팔로워와 팔로잉 목록을 함께 반환하는 핸들러를 반환한다.
func (s *Server) handleFollow() gin.HandlerFunc {
	return func(c *gin.Context) {
		nick := c.Param("nick")

		user, err := s.queries.GetUserByNick(c.Request.Context(), nick)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{
				"code":    http.StatusNotFound,
				"message": "검색 결과가 없습니다",
			})
			return
		}
		if err != nil {
			log.Printf("사용자 조회 에러: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    http.StatusInternalServerError,
				"message": "서버 에러",
			})
			return
		}

		followers, err := s.queries.ListFollowers(c.Request.Context(), user.ID)
		if err != nil {
			log.Printf("팔로워 조회 에러: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    http.StatusInternalServerError,
				"message": "서버 에러",
			})
			return
		}

		followings, err := s.queries.ListFollowings(c.Request.Context(), user.ID)
		if err != nil {
			log.Printf("팔로잉 조회 에러: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    http.StatusInternalServerError,
				"message": "서버 에러",
			})
			return
		}

		followerList := make([]userResponse, 0, len(followers))
		for _, u := range followers {
			followerList = append(followerList, userResponse{ID: u.ID, Nick: u.Nick})
		}
		followingList := make([]userResponse, 0, len(followings))
		for _, u := range followings {
			followingList = append(followingList, userResponse{ID: u.ID, Nick: u.Nick})
		}

		c.JSON(http.StatusOK, gin.H{
			"code": http.StatusOK,
			"payload": gin.H{
				"followers":  followerList,
				"followings": followingList,
			},
		})
	}
}
