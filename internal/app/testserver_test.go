package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"careercode_backend/internal/auth"
	"careercode_backend/internal/config"
	"careercode_backend/internal/events"
	"careercode_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// stubVerifier принимает только известные ему bearer-токены
type stubVerifier map[string]string

func (v stubVerifier) VerifyIDToken(_ context.Context, token string) (string, error) {
	email, ok := v[token]
	if !ok {
		return "", auth.ErrInvalidIdentityToken
	}
	return email, nil
}

type testServer struct {
	Server *httptest.Server
	Repos  *repositories.Repositories
	Tokens *auth.TokenService
}

// newTestServer поднимает полный роутер поверх хранилища в памяти
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Database.Driver = "memory"
	cfg.CORS.Origins = []string{"http://localhost:5173"}

	repos := repositories.NewMemoryRepositories()
	tokens := auth.NewTokenService("test-secret", 0)

	router := SetupRouter(&Dependencies{
		Config:       cfg,
		Repositories: repos,
		Tokens:       tokens,
		Verifier: stubVerifier{
			"token-b": "b@y.com",
			"token-d": "d@y.com",
		},
		Publisher: events.NopPublisher{},
	})

	ts := &testServer{
		Server: httptest.NewServer(router),
		Repos:  repos,
		Tokens: tokens,
	}
	t.Cleanup(ts.Server.Close)
	return ts
}

func withBearer(token string) func(*http.Request) {
	return func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func withCookie(cookie *http.Cookie) func(*http.Request) {
	return func(req *http.Request) {
		req.AddCookie(cookie)
	}
}

// SendRequest отправляет body как JSON (строку - как есть)
// и возвращает ответ с уже прочитанным телом.
func (ts *testServer) SendRequest(t *testing.T, method, path string, body any, opts ...func(*http.Request)) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reqBody = bytes.NewBufferString(b)
	default:
		jsonBody, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}
	defer res.Body.Close()

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}
	return res, string(resBodyBytes)
}

// decode разбирает тело ответа в v или валит тест
func decode(t *testing.T, body string, v any) {
	t.Helper()
	if err := json.Unmarshal([]byte(body), v); err != nil {
		t.Fatalf("Не удалось распарсить JSON %q: %v", body, err)
	}
}
