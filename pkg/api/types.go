package api

// Channel is a recovery delivery mechanism.
type Channel string

const (
	ChannelTelegram Channel = "telegram"
	ChannelEmail    Channel = "email"
)

// RecoveryOptions describes which channels the backend can deliver a
// one-time code through for a given account.
type RecoveryOptions struct {
	Telegram    bool    `json:"telegram"`
	Email       bool    `json:"email"`
	EmailMasked *string `json:"emailMasked"`
}

// Count returns the number of enabled channels.
func (o RecoveryOptions) Count() int {
	n := 0
	if o.Telegram {
		n++
	}
	if o.Email {
		n++
	}
	return n
}

// RecoveryOptionsRequest is the body of POST /auth/recovery-options.
type RecoveryOptionsRequest struct {
	TelegramID int64 `json:"telegramId"`
}

// ForgotPasswordRequest is the body of POST /auth/forgot-password.
type ForgotPasswordRequest struct {
	TelegramID int64   `json:"telegramId"`
	Method     Channel `json:"method"`
}

// ResetPasswordRequest is the body of POST /auth/reset-password.
type ResetPasswordRequest struct {
	TelegramID  int64  `json:"telegramId"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

// ResetPasswordWithOldRequest is the body of POST /auth/reset-password-with-old.
type ResetPasswordWithOldRequest struct {
	TelegramID  int64  `json:"telegramId"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}
