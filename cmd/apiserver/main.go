// NodeBird 오픈 API 서버의 엔트리 포인트.
// 등록된 도메인의 클라이언트에 JWT 토큰을 발급하고,
// 게시글·해시태그·팔로우 조회 API를 제공한다.
package main

import (
	"log"
	"os"

	"github.com/Gyeongm1n/api-server/internal/apiserver"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8002"
	}

	server, err := apiserver.NewServer(port)
	if err != nil {
		log.Fatalf("API 서버 초기화에 실패: %v", err)
	}

	log.Printf("API 서버를 시작합니다: :%s", port)
	if err := server.Run(); err != nil {
		log.Fatalf("API 서버 기동에 실패: %v", err)
	}
}
