package apperrors

// Error codes - organized by domain

// Validation errors (VALIDATION_*)
const (
	ErrCodeInvalidInput      = "VALIDATION_INVALID_INPUT"
	ErrCodeInvalidTelegramID = "VALIDATION_INVALID_TELEGRAM_ID"
	ErrCodePasswordTooShort  = "VALIDATION_PASSWORD_TOO_SHORT"
	ErrCodePasswordMismatch  = "VALIDATION_PASSWORD_MISMATCH"
	ErrCodeMissingField      = "VALIDATION_MISSING_FIELD"
)

// Recovery errors (RECOVERY_*)
const (
	ErrCodeAccountNotFound    = "RECOVERY_ACCOUNT_NOT_FOUND"
	ErrCodeNoChannel          = "RECOVERY_NO_CHANNEL"
	ErrCodeChannelDisabled    = "RECOVERY_CHANNEL_DISABLED"
	ErrCodeInvalidCode        = "RECOVERY_INVALID_CODE"
	ErrCodeCodeExpired        = "RECOVERY_CODE_EXPIRED"
	ErrCodeInvalidOldPassword = "RECOVERY_INVALID_OLD_PASSWORD"
)

// Internal errors (INTERNAL_*)
const (
	ErrCodeUnexpectedError = "INTERNAL_UNEXPECTED_ERROR"
)
