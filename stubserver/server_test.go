package stubserver

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"recovery-cli/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init(logger.Config{
		Level:       logger.LevelError,
		Environment: "production",
		Output:      io.Discard,
	})
	os.Exit(m.Run())
}

func newTestServer() *Server {
	return New(logger.Get(),
		Account{TelegramID: 12345, TelegramLinked: true, Email: "alice@b.com", Password: "alice-secret"},
		Account{TelegramID: 555, TelegramLinked: true, Password: "bob-secret"},
	)
}

func doJSON(t *testing.T, s *Server, method, path, body string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec.Code, decoded
}

func TestRecoveryOptions(t *testing.T) {
	s := newTestServer()

	status, body := doJSON(t, s, http.MethodPost, "/auth/recovery-options", `{"telegramId":12345}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["telegram"] != true || body["email"] != true {
		t.Errorf("options = %v, want both channels enabled", body)
	}
	if body["emailMasked"] != "a***@b.com" {
		t.Errorf("emailMasked = %v, want a***@b.com", body["emailMasked"])
	}

	// Telegram-only account carries a null mask.
	status, body = doJSON(t, s, http.MethodPost, "/auth/recovery-options", `{"telegramId":555}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["email"] != false || body["emailMasked"] != nil {
		t.Errorf("options = %v, want email disabled with null mask", body)
	}
}

func TestRecoveryOptionsUnknownAccount(t *testing.T) {
	s := newTestServer()

	status, body := doJSON(t, s, http.MethodPost, "/auth/recovery-options", `{"telegramId":999}`)
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	if body["message"] != "Account not found" {
		t.Errorf("message = %v, want account-not-found text", body["message"])
	}
}

func TestCodeFlow(t *testing.T) {
	s := newTestServer()

	status, _ := doJSON(t, s, http.MethodPost, "/auth/forgot-password", `{"telegramId":12345,"method":"email"}`)
	if status != http.StatusOK {
		t.Fatalf("forgot-password status = %d, want 200", status)
	}

	code := s.LastCode(12345)
	if len(code) != 4 {
		t.Fatalf("LastCode() = %q, want a 4-digit code", code)
	}

	// Wrong code is rejected and stays usable.
	wrong := "0000"
	if wrong == code {
		wrong = "0001"
	}
	status, body := doJSON(t, s, http.MethodPost, "/auth/reset-password",
		`{"telegramId":12345,"code":"`+wrong+`","newPassword":"hunter22"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("wrong-code status = %d, want 400", status)
	}
	if body["message"] != "Invalid or expired verification code" {
		t.Errorf("message = %v", body["message"])
	}

	// Right code succeeds and is single use.
	status, _ = doJSON(t, s, http.MethodPost, "/auth/reset-password",
		`{"telegramId":12345,"code":"`+code+`","newPassword":"hunter22"}`)
	if status != http.StatusOK {
		t.Fatalf("reset status = %d, want 200", status)
	}
	if s.accounts[12345].Password != "hunter22" {
		t.Errorf("password not updated")
	}

	status, _ = doJSON(t, s, http.MethodPost, "/auth/reset-password",
		`{"telegramId":12345,"code":"`+code+`","newPassword":"hunter23"}`)
	if status != http.StatusBadRequest {
		t.Errorf("reused-code status = %d, want 400", status)
	}
}

func TestExpiredCode(t *testing.T) {
	s := newTestServer()

	doJSON(t, s, http.MethodPost, "/auth/forgot-password", `{"telegramId":12345,"method":"telegram"}`)
	code := s.LastCode(12345)

	s.now = func() time.Time { return time.Now().Add(CodeExpiry + time.Minute) }

	status, _ := doJSON(t, s, http.MethodPost, "/auth/reset-password",
		`{"telegramId":12345,"code":"`+code+`","newPassword":"hunter22"}`)
	if status != http.StatusBadRequest {
		t.Errorf("expired-code status = %d, want 400", status)
	}
}

func TestForgotPasswordChannelChecks(t *testing.T) {
	s := newTestServer()

	// Account 555 has no email on file.
	status, _ := doJSON(t, s, http.MethodPost, "/auth/forgot-password", `{"telegramId":555,"method":"email"}`)
	if status != http.StatusBadRequest {
		t.Errorf("disabled-channel status = %d, want 400", status)
	}

	status, _ = doJSON(t, s, http.MethodPost, "/auth/forgot-password", `{"telegramId":12345,"method":"carrier-pigeon"}`)
	if status != http.StatusBadRequest {
		t.Errorf("unknown-method status = %d, want 400", status)
	}
}

func TestResetPasswordValidation(t *testing.T) {
	s := newTestServer()

	status, body := doJSON(t, s, http.MethodPost, "/auth/reset-password",
		`{"telegramId":12345,"code":"1234","newPassword":"abc12"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("short-password status = %d, want 400", status)
	}
	if body["message"] != "Password must be at least 6 characters" {
		t.Errorf("message = %v", body["message"])
	}

	status, _ = doJSON(t, s, http.MethodPost, "/auth/reset-password",
		`{"telegramId":12345,"newPassword":"hunter22"}`)
	if status != http.StatusBadRequest {
		t.Errorf("missing-code status = %d, want 400", status)
	}

	// Five Cyrillic characters are ten bytes; the bound is on characters.
	status, body = doJSON(t, s, http.MethodPost, "/auth/reset-password",
		`{"telegramId":12345,"code":"1234","newPassword":"абвгд"}`)
	if status != http.StatusBadRequest {
		t.Errorf("short-cyrillic-password status = %d, want 400", status)
	}
}

func TestResetPasswordCyrillicLength(t *testing.T) {
	s := newTestServer()

	// Six Cyrillic characters clear the length check.
	status, _ := doJSON(t, s, http.MethodPost, "/auth/reset-password-with-old",
		`{"telegramId":12345,"oldPassword":"alice-secret","newPassword":"абвгде"}`)
	if status != http.StatusOK {
		t.Fatalf("cyrillic-password status = %d, want 200", status)
	}
	if s.accounts[12345].Password != "абвгде" {
		t.Errorf("password not updated")
	}

	status, _ = doJSON(t, s, http.MethodPost, "/auth/reset-password-with-old",
		`{"telegramId":12345,"oldPassword":"абвгде","newPassword":"абвгд"}`)
	if status != http.StatusBadRequest {
		t.Errorf("short-cyrillic-password status = %d, want 400", status)
	}
}

func TestResetWithOldPassword(t *testing.T) {
	s := newTestServer()

	status, _ := doJSON(t, s, http.MethodPost, "/auth/reset-password-with-old",
		`{"telegramId":12345,"oldPassword":"wrong","newPassword":"hunter22"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("wrong-old-password status = %d, want 400", status)
	}

	status, _ = doJSON(t, s, http.MethodPost, "/auth/reset-password-with-old",
		`{"telegramId":12345,"oldPassword":"alice-secret","newPassword":"hunter22"}`)
	if status != http.StatusOK {
		t.Fatalf("reset-with-old status = %d, want 200", status)
	}
	if s.accounts[12345].Password != "hunter22" {
		t.Errorf("password not updated")
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer()

	status, body := doJSON(t, s, http.MethodGet, "/health", "")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}
