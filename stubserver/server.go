// Package stubserver is a development and test double for the recovery
// backend. It serves the four recovery endpoints over in-memory fixture
// accounts: codes are generated for real but logged instead of delivered,
// nothing is persisted, and no tokens are issued.
package stubserver

import (
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"recovery-cli/pkg/apperrors"
	"recovery-cli/pkg/logger"
)

// CodeExpiry is how long an issued code stays valid.
const CodeExpiry = 30 * time.Minute

// Account is an in-memory fixture account.
type Account struct {
	TelegramID     int64
	TelegramLinked bool
	Email          string
	Password       string
}

// resetCode is an issued one-time code. The plaintext is kept alongside the
// hash because the stub logs it in place of delivering it.
type resetCode struct {
	code      string
	hash      string
	expiresAt time.Time
	used      bool
}

// Server holds the stub state.
type Server struct {
	log logger.Logger

	mu       sync.Mutex
	accounts map[int64]*Account
	codes    map[int64]*resetCode

	now func() time.Time
}

// New creates a stub backend over the given accounts.
func New(log logger.Logger, accounts ...Account) *Server {
	s := &Server{
		log:      log.WithComponent("stubserver"),
		accounts: make(map[int64]*Account, len(accounts)),
		codes:    map[int64]*resetCode{},
		now:      time.Now,
	}
	for i := range accounts {
		account := accounts[i]
		s.accounts[account.TelegramID] = &account
	}
	return s
}

// Echo builds the echo instance with the middleware chain and routes.
func (s *Server) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler(s.log)

	e.Use(logger.RequestLoggerMiddleware(s.log))
	e.Use(logger.RecoveryMiddleware(s.log))

	e.GET("/health", s.HealthHandler)
	e.POST("/auth/recovery-options", s.RecoveryOptionsHandler)
	e.POST("/auth/forgot-password", s.ForgotPasswordHandler)
	e.POST("/auth/reset-password", s.ResetPasswordHandler)
	e.POST("/auth/reset-password-with-old", s.ResetPasswordWithOldHandler)

	return e
}

// LastCode returns the plaintext of the most recently issued code for an
// account, or "" when none is outstanding. Meant for tests and manual runs
// against the stub.
func (s *Server) LastCode(telegramID int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if code, ok := s.codes[telegramID]; ok && !code.used {
		return code.code
	}
	return ""
}
