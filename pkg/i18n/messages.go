package i18n

import "fmt"

// Message keys used by the wizard. Keys missing from a locale fall back to
// English, then to the key itself.
const (
	KeyTitleIdentify   = "title.identify"
	KeyTitleChoose     = "title.choose"
	KeyTitleRequest    = "title.request"
	KeyTitleSubmit     = "title.submit"
	KeyTitleDone       = "title.done"
	KeyPromptID        = "prompt.telegram_id"
	KeyPromptChoose    = "prompt.choose_channel"
	KeyPromptSend      = "prompt.send_code"
	KeyPromptCode      = "prompt.code"
	KeyPromptOldPass   = "prompt.old_password"
	KeyPromptNewPass   = "prompt.new_password"
	KeyPromptConfirm   = "prompt.confirm_password"
	KeyChannelTelegram = "channel.telegram"
	KeyChannelEmail    = "channel.email"
	KeyCodeSentTg      = "info.code_sent_telegram"
	KeyCodeSentEmail   = "info.code_sent_email"
	KeyResetDone       = "info.reset_done"
	KeyLoginHint       = "info.login_hint"
	KeyErrGeneric      = "error.generic"
	KeyErrInvalidID    = "error.invalid_telegram_id"
	KeyErrTooShort     = "error.password_too_short"
	KeyErrMismatch     = "error.password_mismatch"
	KeyErrNoChannel    = "error.no_channel"
	KeyHelpIdentify    = "help.identify"
	KeyHelpChoose      = "help.choose"
	KeyHelpRequest     = "help.request"
	KeyHelpSubmit      = "help.submit"
	KeySending         = "status.sending"
)

var messages = map[string]map[string]string{
	"en": {
		KeyTitleIdentify:   "Account recovery",
		KeyTitleChoose:     "Choose recovery method",
		KeyTitleRequest:    "Request a code",
		KeyTitleSubmit:     "Set a new password",
		KeyTitleDone:       "Password changed",
		KeyPromptID:        "Telegram ID",
		KeyPromptChoose:    "Where should we send the verification code?",
		KeyPromptSend:      "Press enter to send the code",
		KeyPromptCode:      "Verification code",
		KeyPromptOldPass:   "Current password",
		KeyPromptNewPass:   "New password",
		KeyPromptConfirm:   "Confirm new password",
		KeyChannelTelegram: "Telegram message",
		KeyChannelEmail:    "Email to %s",
		KeyCodeSentTg:      "A verification code was sent to your Telegram.",
		KeyCodeSentEmail:   "A verification code was sent to %s.",
		KeyResetDone:       "Your password has been changed.",
		KeyLoginHint:       "You can now sign in with your new password.",
		KeyErrGeneric:      "Something went wrong. Please try again.",
		KeyErrInvalidID:    "Enter a numeric Telegram ID.",
		KeyErrTooShort:     "Password must be at least 6 characters.",
		KeyErrMismatch:     "Passwords do not match.",
		KeyErrNoChannel:    "No recovery method is available for this account.",
		KeyHelpIdentify:    "enter: continue • ctrl+o: use current password • ctrl+c: quit",
		KeyHelpChoose:      "↑/↓: select • enter: continue • esc: start over",
		KeyHelpRequest:     "enter: send code • ctrl+r: change method • ctrl+c: quit",
		KeyHelpSubmit:      "tab: next field • enter: submit • esc: back",
		KeySending:         "Sending...",
	},
	"ru": {
		KeyTitleIdentify:   "Восстановление доступа",
		KeyTitleChoose:     "Выберите способ восстановления",
		KeyTitleRequest:    "Запрос кода",
		KeyTitleSubmit:     "Новый пароль",
		KeyTitleDone:       "Пароль изменён",
		KeyPromptID:        "Telegram ID",
		KeyPromptChoose:    "Куда отправить код подтверждения?",
		KeyPromptSend:      "Нажмите enter, чтобы отправить код",
		KeyPromptCode:      "Код подтверждения",
		KeyPromptOldPass:   "Текущий пароль",
		KeyPromptNewPass:   "Новый пароль",
		KeyPromptConfirm:   "Повторите новый пароль",
		KeyChannelTelegram: "Сообщение в Telegram",
		KeyChannelEmail:    "Письмо на %s",
		KeyCodeSentTg:      "Код подтверждения отправлен в ваш Telegram.",
		KeyCodeSentEmail:   "Код подтверждения отправлен на %s.",
		KeyResetDone:       "Пароль успешно изменён.",
		KeyLoginHint:       "Теперь вы можете войти с новым паролем.",
		KeyErrGeneric:      "Что-то пошло не так. Попробуйте ещё раз.",
		KeyErrInvalidID:    "Введите числовой Telegram ID.",
		KeyErrTooShort:     "Пароль должен быть не короче 6 символов.",
		KeyErrMismatch:     "Пароли не совпадают.",
		KeyErrNoChannel:    "Для этого аккаунта нет доступного способа восстановления.",
		KeyHelpIdentify:    "enter: далее • ctrl+o: вход по текущему паролю • ctrl+c: выход",
		KeyHelpChoose:      "↑/↓: выбор • enter: далее • esc: сначала",
		KeyHelpRequest:     "enter: отправить код • ctrl+r: другой способ • ctrl+c: выход",
		KeyHelpSubmit:      "tab: следующее поле • enter: отправить • esc: назад",
		KeySending:         "Отправка...",
	},
}

// Catalog resolves message keys for a locale.
type Catalog struct {
	locale string
}

// New returns a catalog for the given locale. Unknown locales fall back to
// English.
func New(locale string) *Catalog {
	if _, ok := messages[locale]; !ok {
		locale = "en"
	}
	return &Catalog{locale: locale}
}

// T returns the message for key, formatted with args when given.
func (c *Catalog) T(key string, args ...interface{}) string {
	msg, ok := messages[c.locale][key]
	if !ok {
		msg, ok = messages["en"][key]
	}
	if !ok {
		return key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
