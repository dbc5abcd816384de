package stubserver

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"net/http"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"recovery-cli/pkg/api"
	"recovery-cli/pkg/apperrors"
	"recovery-cli/pkg/logger"
	"recovery-cli/utils"
)

// HealthHandler reports liveness.
func (s *Server) HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// RecoveryOptionsHandler returns which channels can deliver a code for the
// account.
func (s *Server) RecoveryOptionsHandler(c echo.Context) error {
	req := new(api.RecoveryOptionsRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[req.TelegramID]
	if !ok {
		return apperrors.NewNotFound(apperrors.ErrCodeAccountNotFound, "Account not found")
	}

	options := api.RecoveryOptions{
		Telegram: account.TelegramLinked,
		Email:    account.Email != "",
	}
	if masked := utils.MaskEmail(account.Email); masked != "" {
		options.EmailMasked = &masked
	}
	return c.JSON(http.StatusOK, options)
}

// ForgotPasswordHandler issues a one-time code for the chosen channel. The
// stub logs the code instead of delivering it.
func (s *Server) ForgotPasswordHandler(c echo.Context) error {
	req := new(api.ForgotPasswordRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request body")
	}
	if req.Method != api.ChannelTelegram && req.Method != api.ChannelEmail {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Unknown recovery method")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[req.TelegramID]
	if !ok {
		return apperrors.NewNotFound(apperrors.ErrCodeAccountNotFound, "Account not found")
	}
	if req.Method == api.ChannelTelegram && !account.TelegramLinked {
		return apperrors.NewBadRequest(apperrors.ErrCodeChannelDisabled, "Telegram is not linked for this account")
	}
	if req.Method == api.ChannelEmail && account.Email == "" {
		return apperrors.NewBadRequest(apperrors.ErrCodeChannelDisabled, "No email on file for this account")
	}

	code, err := generateCode()
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeUnexpectedError, "Failed to generate code", err)
	}

	// Invalidate any outstanding code; only the latest one counts.
	s.codes[req.TelegramID] = &resetCode{
		code:      code,
		hash:      hashCode(code),
		expiresAt: s.now().Add(CodeExpiry),
	}

	s.log.Info("recovery code issued (stub: not delivered)",
		logger.TelegramID(req.TelegramID),
		logger.Channel(string(req.Method)),
		logger.String("code", code),
	)

	return c.JSON(http.StatusOK, map[string]string{
		"message": "A verification code has been sent.",
	})
}

// ResetPasswordHandler sets a new password authenticated by a one-time code.
func (s *Server) ResetPasswordHandler(c echo.Context) error {
	req := new(api.ResetPasswordRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request body")
	}
	if req.Code == "" {
		return apperrors.NewBadRequest(apperrors.ErrCodeMissingField, "Code is required")
	}
	if utf8.RuneCountInString(req.NewPassword) < 6 {
		return apperrors.NewBadRequest(apperrors.ErrCodePasswordTooShort, "Password must be at least 6 characters")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[req.TelegramID]
	if !ok {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidCode, "Invalid or expired verification code")
	}

	code, ok := s.codes[req.TelegramID]
	if !ok || code.used {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidCode, "Invalid or expired verification code")
	}
	if code.expiresAt.Before(s.now()) {
		return apperrors.NewBadRequest(apperrors.ErrCodeCodeExpired, "Invalid or expired verification code")
	}
	if hashCode(req.Code) != code.hash {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidCode, "Invalid or expired verification code")
	}

	code.used = true
	account.Password = req.NewPassword

	s.log.Info("password reset via code", logger.TelegramID(req.TelegramID))
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Password reset successfully",
	})
}

// ResetPasswordWithOldHandler sets a new password authenticated by the
// current one.
func (s *Server) ResetPasswordWithOldHandler(c echo.Context) error {
	req := new(api.ResetPasswordWithOldRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request body")
	}
	if utf8.RuneCountInString(req.NewPassword) < 6 {
		return apperrors.NewBadRequest(apperrors.ErrCodePasswordTooShort, "Password must be at least 6 characters")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[req.TelegramID]
	if !ok || account.Password != req.OldPassword {
		// Same response either way to avoid confirming account existence.
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidOldPassword, "Invalid account or password")
	}

	account.Password = req.NewPassword

	s.log.Info("password reset via old password", logger.TelegramID(req.TelegramID))
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Password reset successfully",
	})
}

// generateCode generates a 4-digit code
func generateCode() (string, error) {
	code := ""
	for i := 0; i < 4; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code += fmt.Sprintf("%d", n.Int64())
	}
	return code, nil
}

// hashCode creates a SHA256 hash of the code
func hashCode(code string) string {
	hash := sha256.Sum256([]byte(code))
	return hex.EncodeToString(hash[:])
}
