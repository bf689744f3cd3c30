package apiserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestCORSGate 는 도메인 조회 기반 CORS 게이트를 검증한다.
func TestCORSGate(t *testing.T) {
	t.Parallel()

	t.Run("등록된 도메인의 오리진에 CORS 헤더가 설정되는 것", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		user := seedUser(t, s, "zero")
		seedDomain(t, s, user.ID, "localhost:4000", "free", "secret-zero")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "http://localhost:4000")
		s.router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("상태 코드 = %d, want %d", w.Code, http.StatusOK)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:4000" {
			t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, "http://localhost:4000")
		}
		if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
			t.Errorf("Access-Control-Allow-Credentials = %q, want %q", got, "true")
		}
	})

	t.Run("등록되지 않은 오리진에 CORS 헤더가 설정되지 않는 것", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "http://unregistered.example.com")
		s.router.ServeHTTP(w, req)

		// 요청 자체는 그대로 진행된다
		if w.Code != http.StatusOK {
			t.Fatalf("상태 코드 = %d, want %d", w.Code, http.StatusOK)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Access-Control-Allow-Origin = %q, want 빈 문자열", got)
		}
	})

	t.Run("Origin 헤더가 없는 요청에 CORS 헤더가 설정되지 않는 것", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		s.router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("상태 코드 = %d, want %d", w.Code, http.StatusOK)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Access-Control-Allow-Origin = %q, want 빈 문자열", got)
		}
	})

	t.Run("등록된 도메인의 OPTIONS 요청이 204로 중단되는 것", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		user := seedUser(t, s, "zero")
		seedDomain(t, s, user.ID, "localhost:4000", "free", "secret-zero")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/token", nil)
		req.Header.Set("Origin", "http://localhost:4000")
		s.router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("상태 코드 = %d, want %d", w.Code, http.StatusNoContent)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:4000" {
			t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, "http://localhost:4000")
		}
	})
}

// TestTierRateLimit 는 도메인 등급이 속도 제한에 반영되는지를 검증한다.
func TestTierRateLimit(t *testing.T) {
	t.Parallel()

	t.Run("free 도메인은 분당 10회를 넘기면 429가 반환되는 것", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		user := seedUser(t, s, "zero")
		seedDomain(t, s, user.ID, "localhost:4000", "free", "secret-zero")
		token := generateTestJWT(t, user.ID, user.Nick)

		var lastCode int
		var lastBody []byte
		for i := 0; i < 11; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("Origin", "http://localhost:4000")
			req.Header.Set("Authorization", "Bearer "+token)
			s.router.ServeHTTP(w, req)
			lastCode = w.Code
			lastBody = w.Body.Bytes()
		}

		if lastCode != http.StatusTooManyRequests {
			t.Fatalf("11번째 요청의 상태 코드 = %d, want %d", lastCode, http.StatusTooManyRequests)
		}

		var body map[string]any
		if err := json.Unmarshal(lastBody, &body); err != nil {
			t.Fatalf("응답 파싱에 실패: %v", err)
		}
		if body["message"] != "1분에 열 번만 요청할 수 있습니다" {
			t.Errorf("message = %q, want %q", body["message"], "1분에 열 번만 요청할 수 있습니다")
		}
	})

	t.Run("premium 도메인은 분당 10회를 넘겨도 통과하는 것", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		user := seedUser(t, s, "nero")
		seedDomain(t, s, user.ID, "localhost:4005", "premium", "secret-nero")
		token := generateTestJWT(t, user.ID, user.Nick)

		for i := 0; i < 11; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("Origin", "http://localhost:4005")
			req.Header.Set("Authorization", "Bearer "+token)
			s.router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("%d번째 요청의 상태 코드 = %d, want %d", i+1, w.Code, http.StatusOK)
			}
		}
	})
}
