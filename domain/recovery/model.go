package recovery

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"recovery-cli/pkg/api"
	"recovery-cli/pkg/i18n"

	"github.com/charmbracelet/bubbles/textinput"
)

// MinPasswordLength is the client-side minimum for a new password. The
// backend enforces the same bound.
const MinPasswordLength = 6

// loginRedirectDelay is how long the success screen stays up before the
// wizard leaves toward login.
const loginRedirectDelay = 2000 * time.Millisecond

// stepID enumerates the wizard screens. Exactly one is active at a time;
// each has its own state struct carrying only the data that screen needs.
type stepID int

const (
	stepIdentify stepID = iota
	stepChooseChannel
	stepRequestCode
	stepSubmitPassword
	stepDone
)

func (s stepID) String() string {
	switch s {
	case stepIdentify:
		return "identify"
	case stepChooseChannel:
		return "choose_channel"
	case stepRequestCode:
		return "request_code"
	case stepSubmitPassword:
		return "submit_password"
	case stepDone:
		return "done"
	}
	return "unknown"
}

// identifyState is the account-identification screen.
type identifyState struct {
	input textinput.Model
	busy  bool
}

func newIdentifyState(msgs *i18n.Catalog) identifyState {
	input := textinput.New()
	input.Placeholder = msgs.T(i18n.KeyPromptID)
	input.CharLimit = 20
	input.Focus()
	return identifyState{input: input}
}

// channelEntry is one selectable row on the channel screen.
type channelEntry struct {
	channel api.Channel
	label   string
}

// chooseState is the channel-selection screen.
type chooseState struct {
	telegramID int64
	options    api.RecoveryOptions
	entries    []channelEntry
	cursor     int
}

func newChooseState(msgs *i18n.Catalog, telegramID int64, options api.RecoveryOptions) chooseState {
	var entries []channelEntry
	if options.Telegram {
		entries = append(entries, channelEntry{
			channel: api.ChannelTelegram,
			label:   msgs.T(i18n.KeyChannelTelegram),
		})
	}
	if options.Email {
		entries = append(entries, channelEntry{
			channel: api.ChannelEmail,
			label:   msgs.T(i18n.KeyChannelEmail, maskedOrEmpty(options)),
		})
	}
	return chooseState{telegramID: telegramID, options: options, entries: entries}
}

func maskedOrEmpty(options api.RecoveryOptions) string {
	if options.EmailMasked != nil {
		return *options.EmailMasked
	}
	return ""
}

// requestState is the code-request screen.
type requestState struct {
	telegramID  int64
	channel     api.Channel
	emailMasked string
	busy        bool
}

// submitState is the new-password screen. The old-password path collects
// the identifier here because its escape hatch skips the Identify screen.
type submitState struct {
	oldPath bool
	busy    bool

	// code path
	telegramID int64
	code       textinput.Model

	// old-password path
	idInput textinput.Model
	oldPass textinput.Model

	newPass textinput.Model
	confirm textinput.Model
	focus   int
}

func newCodeSubmitState(msgs *i18n.Catalog, telegramID int64) submitState {
	s := submitState{telegramID: telegramID}

	s.code = textinput.New()
	s.code.Placeholder = msgs.T(i18n.KeyPromptCode)
	s.code.CharLimit = 8
	s.code.Focus()

	s.newPass = passwordInput(msgs.T(i18n.KeyPromptNewPass))
	s.confirm = passwordInput(msgs.T(i18n.KeyPromptConfirm))
	return s
}

func newOldPathSubmitState(msgs *i18n.Catalog) submitState {
	s := submitState{oldPath: true}

	s.idInput = textinput.New()
	s.idInput.Placeholder = msgs.T(i18n.KeyPromptID)
	s.idInput.CharLimit = 20
	s.idInput.Focus()

	s.oldPass = passwordInput(msgs.T(i18n.KeyPromptOldPass))
	s.newPass = passwordInput(msgs.T(i18n.KeyPromptNewPass))
	s.confirm = passwordInput(msgs.T(i18n.KeyPromptConfirm))
	return s
}

func passwordInput(placeholder string) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	input.CharLimit = 64
	return input
}

// fields returns the active inputs in tab order.
func (s *submitState) fields() []*textinput.Model {
	if s.oldPath {
		return []*textinput.Model{&s.idInput, &s.oldPass, &s.newPass, &s.confirm}
	}
	return []*textinput.Model{&s.code, &s.newPass, &s.confirm}
}

func (s *submitState) setFocus(i int) {
	fields := s.fields()
	if i < 0 {
		i = len(fields) - 1
	}
	if i >= len(fields) {
		i = 0
	}
	s.focus = i
	for j, f := range fields {
		if j == i {
			f.Focus()
		} else {
			f.Blur()
		}
	}
}

// parseTelegramID parses the user-supplied account identifier. The backend
// keys accounts on a positive numeric Telegram ID.
func parseTelegramID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// validatePasswords returns the i18n key of the first validation failure,
// or "" when the pair is acceptable. Mismatch wins over length so the user
// fixes the typo first. Length counts characters, not bytes; Cyrillic
// passwords are normal input here.
func validatePasswords(newPass, confirm string) string {
	if newPass != confirm {
		return i18n.KeyErrMismatch
	}
	if utf8.RuneCountInString(newPass) < MinPasswordLength {
		return i18n.KeyErrTooShort
	}
	return ""
}

// --- messages delivered back into Update ---

type optionsResult struct {
	telegramID int64
	options    *api.RecoveryOptions
	err        error
}

type codeResult struct {
	err error
}

type resetResult struct {
	err error
}

// redirectTick fires once the post-success delay has elapsed.
type redirectTick struct{}
