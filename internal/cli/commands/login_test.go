package commands

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"LinkBank/internal/config"
)

// withTempConfig переопределяет пользовательский конфиг-каталог на время теста,
// чтобы токен и логин создавались в temp.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

func TestLogin_Run_SuccessAndErrors(t *testing.T) {
	withTempConfig(t)

	// HTTP сервер имитирует /api/user/login
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/api/user/login") {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		// успех: 200 + Set-Cookie
		http.SetCookie(w, &http.Cookie{Name: "auth_token", Value: "tok-123"})
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":1,"name":"Alice","email":"alice@example.com"}}`))
	}))
	defer ts.Close()

	cfg := &config.Config{ServerURL: ts.URL}
	cmd := loginCmd{}
	if err := cmd.Run(context.Background(), cfg, []string{"alice@example.com", "secret1"}); err != nil {
		t.Fatalf("login should succeed: %v", err)
	}
	// токен лежит в %CONFIG%/LinkBank/auth_token
	var tokenPath string
	if p, err := os.UserConfigDir(); err == nil {
		tokenPath = filepath.Join(p, "LinkBank", "auth_token")
	}
	b, err := os.ReadFile(tokenPath)
	if err != nil || len(b) == 0 {
		t.Fatalf("auth token not saved: %v", err)
	}

	// 401 Unauthorized с конвертом ошибки
	ts401 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"message":"invalid credentials"}`))
	}))
	defer ts401.Close()
	cfg401 := &config.Config{ServerURL: ts401.URL}
	if err := cmd.Run(context.Background(), cfg401, []string{"alice@example.com", "bad"}); err == nil {
		t.Fatalf("expected error for 401")
	}

	// недостаточно аргументов → ErrUsage
	if err := cmd.Run(context.Background(), cfg, []string{"onlyEmail"}); err != ErrUsage {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
}

func TestMe_Run(t *testing.T) {
	withTempConfig(t)
	cmd := meCmd{}

	// без токена — подсказка, не ошибка
	out := withStdoutCapture(t, func() {
		if err := cmd.Run(context.Background(), &config.Config{}, nil); err != nil {
			t.Fatalf("me without token should not fail: %v", err)
		}
	})
	if !strings.Contains(out, "Not logged in") {
		t.Fatalf("expected not-logged-in hint, got %q", out)
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("auth_token"); err != nil || c.Value != "tok-123" {
			t.Fatalf("auth cookie not passed")
		}
		_, _ = w.Write([]byte(`{"success":true,"data":{"name":"Alice","email":"alice@example.com"}}`))
	}))
	defer ts.Close()

	// сохраняем токен и повторяем
	if err := writeToken(t, "tok-123"); err != nil {
		t.Fatal(err)
	}
	out = withStdoutCapture(t, func() {
		if err := cmd.Run(context.Background(), &config.Config{ServerURL: ts.URL}, nil); err != nil {
			t.Fatalf("me failed: %v", err)
		}
	})
	if !strings.Contains(out, "Alice <alice@example.com>") {
		t.Fatalf("unexpected me output %q", out)
	}
}

func writeToken(t *testing.T, token string) error {
	t.Helper()
	p, err := os.UserConfigDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(p, "LinkBank")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "auth_token"), []byte(token), 0o600)
}
