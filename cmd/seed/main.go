// 개발용 시드 데이터 생성 도구.
// 데모 사용자, 무료/프리미엄 도메인, 게시글, 해시태그, 팔로우 관계를 만들고
// 발급된 클라이언트 비밀키를 표준 출력으로 알려준다.
// 도메인 등록과 게시글 작성은 API 서버 바깥의 흐름이므로 여기서만 쓰기가 일어난다.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/Gyeongm1n/api-server/internal/apiserver"
	apidb "github.com/Gyeongm1n/api-server/internal/apiserver/db"
)

func main() {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "./nodebird.db"
	}

	sqlDB, err := apiserver.OpenDB(path)
	if err != nil {
		log.Fatalf("데이터베이스 초기화에 실패: %v", err)
	}
	defer func() { _ = sqlDB.Close() }()

	queries := apidb.New(sqlDB)
	ctx := context.Background()

	// 데모 사용자
	zero, err := queries.CreateUser(ctx, "zero")
	if err != nil {
		log.Fatalf("시드 데이터 생성에 실패 (이미 생성되어 있을 수 있습니다): %v", err)
	}
	nero := mustCreateUser(ctx, queries, "nero")
	hero := mustCreateUser(ctx, queries, "hero")

	// 무료/프리미엄 도메인. 클라이언트 비밀키는 UUIDv4.
	freeDomain, err := queries.CreateDomain(ctx, apidb.CreateDomainParams{
		UserID:       zero.ID,
		Host:         "localhost:4000",
		Type:         "free",
		ClientSecret: uuid.New().String(),
	})
	if err != nil {
		log.Fatalf("도메인 생성에 실패: %v", err)
	}
	premiumDomain, err := queries.CreateDomain(ctx, apidb.CreateDomainParams{
		UserID:       nero.ID,
		Host:         "localhost:4005",
		Type:         "premium",
		ClientSecret: uuid.New().String(),
	})
	if err != nil {
		log.Fatalf("도메인 생성에 실패: %v", err)
	}

	// 게시글과 해시태그
	cat := mustCreateHashtag(ctx, queries, "고양이")
	node := mustCreateHashtag(ctx, queries, "노드")

	post1 := mustCreatePost(ctx, queries, zero.ID, "우리집 #고양이 자랑")
	post2 := mustCreatePost(ctx, queries, nero.ID, "#노드 공부 중입니다")
	post3 := mustCreatePost(ctx, queries, zero.ID, "#고양이 와 #노드")
	mustTag(ctx, queries, post1.ID, cat.ID)
	mustTag(ctx, queries, post2.ID, node.ID)
	mustTag(ctx, queries, post3.ID, cat.ID)
	mustTag(ctx, queries, post3.ID, node.ID)

	// 팔로우 관계: nero와 hero가 zero를 팔로우, zero는 nero를 팔로우
	mustFollow(ctx, queries, nero.ID, zero.ID)
	mustFollow(ctx, queries, hero.ID, zero.ID)
	mustFollow(ctx, queries, zero.ID, nero.ID)

	fmt.Printf("free 도메인 (%s) clientSecret: %s\n", freeDomain.Host, freeDomain.ClientSecret)
	fmt.Printf("premium 도메인 (%s) clientSecret: %s\n", premiumDomain.Host, premiumDomain.ClientSecret)
}

func mustCreateUser(ctx context.Context, queries *apidb.Queries, nick string) apidb.CreateUserRow {
	user, err := queries.CreateUser(ctx, nick)
	if err != nil {
		log.Fatalf("사용자 %s 생성에 실패: %v", nick, err)
	}
	return user
}

func mustCreateHashtag(ctx context.Context, queries *apidb.Queries, title string) apidb.CreateHashtagRow {
	hashtag, err := queries.CreateHashtag(ctx, title)
	if err != nil {
		log.Fatalf("해시태그 %s 생성에 실패: %v", title, err)
	}
	return hashtag
}

func mustCreatePost(ctx context.Context, queries *apidb.Queries, userID int64, content string) apidb.CreatePostRow {
	post, err := queries.CreatePost(ctx, apidb.CreatePostParams{UserID: userID, Content: content})
	if err != nil {
		log.Fatalf("게시글 생성에 실패: %v", err)
	}
	return post
}

func mustTag(ctx context.Context, queries *apidb.Queries, postID, hashtagID int64) {
	if err := queries.TagPost(ctx, apidb.TagPostParams{PostID: postID, HashtagID: hashtagID}); err != nil {
		log.Fatalf("해시태그 연결에 실패: %v", err)
	}
}

func mustFollow(ctx context.Context, queries *apidb.Queries, followerID, followingID int64) {
	if err := queries.FollowUser(ctx, apidb.FollowUserParams{FollowerID: followerID, FollowingID: followingID}); err != nil {
		log.Fatalf("팔로우 관계 생성에 실패: %v", err)
	}
}
