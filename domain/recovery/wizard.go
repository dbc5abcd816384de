// Package recovery implements the password-recovery wizard as an explicit
// state machine: one step enum, one state struct per step, a single Update
// dispatching messages and a single View rendering the active step.
package recovery

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"recovery-cli/pkg/api"
	"recovery-cli/pkg/i18n"
	"recovery-cli/pkg/logger"
)

// Model is the root wizard model.
type Model struct {
	client *api.Client
	msgs   *i18n.Catalog
	log    logger.Logger

	step     stepID
	identify identifyState
	choose   chooseState
	request  requestState
	submit   submitState

	errMsg string
	info   string

	redirectDelay time.Duration
	loginHint     bool
}

// New creates the wizard at the Identify step.
func New(client *api.Client, msgs *i18n.Catalog, log logger.Logger) Model {
	return Model{
		client:        client,
		msgs:          msgs,
		log:           log.WithComponent("wizard"),
		step:          stepIdentify,
		identify:      newIdentifyState(msgs),
		redirectDelay: loginRedirectDelay,
	}
}

// LoginHint reports whether the wizard finished a reset and left toward
// login; the caller prints the sign-in hint after the program exits.
func (m Model) LoginHint() bool {
	return m.loginHint
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

	case optionsResult:
		return m.handleOptions(msg)

	case codeResult:
		return m.handleCodeResult(msg)

	case resetResult:
		return m.handleResetResult(msg)

	case redirectTick:
		if m.step == stepDone {
			m.loginHint = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.step {
	case stepIdentify:
		return m.updateIdentify(msg)
	case stepChooseChannel:
		return m.updateChoose(msg)
	case stepRequestCode:
		return m.updateRequest(msg)
	case stepSubmitPassword:
		return m.updateSubmit(msg)
	}
	return m, nil
}

// --- Identify ---

func (m Model) updateIdentify(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.identify.input, cmd = m.identify.input.Update(msg)
		return m, cmd
	}

	switch key.Type {
	case tea.KeyCtrlO:
		// Escape hatch: reset with the current password instead of a code.
		m.submit = newOldPathSubmitState(m.msgs)
		m.step = stepSubmitPassword
		m.errMsg = ""
		m.info = ""
		return m, nil

	case tea.KeyEnter:
		if m.identify.busy {
			// One lookup in flight; ignore the duplicate submit.
			return m, nil
		}
		id, ok := parseTelegramID(m.identify.input.Value())
		if !ok {
			m.errMsg = m.msgs.T(i18n.KeyErrInvalidID)
			return m, nil
		}
		m.identify.busy = true
		m.errMsg = ""
		m.log.Info("looking up recovery options", logger.TelegramID(id))
		return m, m.fetchOptions(id)
	}

	var cmd tea.Cmd
	m.identify.input, cmd = m.identify.input.Update(msg)
	return m, cmd
}

func (m Model) handleOptions(msg optionsResult) (tea.Model, tea.Cmd) {
	if m.step != stepIdentify {
		// The user already moved on; a stale lookup must not yank them back.
		return m, nil
	}
	m.identify.busy = false

	if msg.err != nil {
		m.errMsg = m.errorText(msg.err)
		m.log.Warn("options lookup failed", logger.Err(msg.err))
		return m, nil
	}

	options := *msg.options
	m.choose = newChooseState(m.msgs, msg.telegramID, options)
	m.errMsg = ""

	switch options.Count() {
	case 0:
		m.errMsg = m.msgs.T(i18n.KeyErrNoChannel)
		return m, nil
	case 1:
		// Single channel: skip the selection screen entirely.
		entry := m.choose.entries[0]
		m.request = requestState{
			telegramID:  msg.telegramID,
			channel:     entry.channel,
			emailMasked: maskedOrEmpty(options),
		}
		m.step = stepRequestCode
		return m, nil
	default:
		m.step = stepChooseChannel
		return m, nil
	}
}

// --- Choose Channel ---

func (m Model) updateChoose(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyUp:
		if m.choose.cursor > 0 {
			m.choose.cursor--
		}
	case tea.KeyDown:
		if m.choose.cursor < len(m.choose.entries)-1 {
			m.choose.cursor++
		}
	case tea.KeyEnter:
		entry := m.choose.entries[m.choose.cursor]
		m.request = requestState{
			telegramID:  m.choose.telegramID,
			channel:     entry.channel,
			emailMasked: maskedOrEmpty(m.choose.options),
		}
		m.step = stepRequestCode
		m.errMsg = ""
	case tea.KeyEsc:
		// Cancel: back to a fresh Identify screen.
		m.identify = newIdentifyState(m.msgs)
		m.step = stepIdentify
		m.errMsg = ""
		m.info = ""
	}
	return m, nil
}

// --- Request Code ---

func (m Model) updateRequest(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyEnter:
		if m.request.busy {
			return m, nil
		}
		m.request.busy = true
		m.errMsg = ""
		m.log.Info("requesting recovery code",
			logger.TelegramID(m.request.telegramID),
			logger.Channel(string(m.request.channel)),
		)
		return m, m.requestCode(m.request.telegramID, m.request.channel)

	case tea.KeyCtrlR:
		// Change method: back to the channel list.
		m.step = stepChooseChannel
		m.errMsg = ""
		return m, nil
	}
	return m, nil
}

func (m Model) handleCodeResult(msg codeResult) (tea.Model, tea.Cmd) {
	if m.step != stepRequestCode {
		// Left the screen (change method) while the request was in flight.
		return m, nil
	}
	m.request.busy = false

	if msg.err != nil {
		m.errMsg = m.errorText(msg.err)
		m.log.Warn("code request failed", logger.Err(msg.err))
		return m, nil
	}

	if m.request.channel == api.ChannelEmail {
		m.info = m.msgs.T(i18n.KeyCodeSentEmail, m.request.emailMasked)
	} else {
		m.info = m.msgs.T(i18n.KeyCodeSentTg)
	}

	m.submit = newCodeSubmitState(m.msgs, m.request.telegramID)
	m.step = stepSubmitPassword
	m.errMsg = ""
	return m, nil
}

// --- Submit New Password ---

func (m Model) updateSubmit(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateSubmitInputs(msg)
	}

	switch key.Type {
	case tea.KeyTab, tea.KeyDown:
		m.submit.setFocus(m.submit.focus + 1)
		return m, nil

	case tea.KeyShiftTab, tea.KeyUp:
		m.submit.setFocus(m.submit.focus - 1)
		return m, nil

	case tea.KeyEsc:
		return m.leaveSubmit()

	case tea.KeyEnter:
		return m.submitPassword()
	}

	return m.updateSubmitInputs(msg)
}

func (m Model) updateSubmitInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	fields := m.submit.fields()
	cmds := make([]tea.Cmd, 0, len(fields))
	for _, f := range fields {
		var cmd tea.Cmd
		*f, cmd = f.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// leaveSubmit is the back action: the code path returns to Request Code
// with the code cleared, the old-password path drops back to Identify with
// the old password cleared.
func (m Model) leaveSubmit() (tea.Model, tea.Cmd) {
	m.errMsg = ""
	m.info = ""

	if m.submit.oldPath {
		m.submit = submitState{}
		m.identify = newIdentifyState(m.msgs)
		m.step = stepIdentify
		return m, nil
	}

	m.submit.code.Reset()
	m.step = stepRequestCode
	return m, nil
}

func (m Model) submitPassword() (tea.Model, tea.Cmd) {
	if m.submit.busy {
		return m, nil
	}

	newPass := m.submit.newPass.Value()
	confirm := m.submit.confirm.Value()

	// Local validation first: nothing goes on the wire until the pair is
	// acceptable.
	if key := validatePasswords(newPass, confirm); key != "" {
		m.errMsg = m.msgs.T(key)
		return m, nil
	}

	if m.submit.oldPath {
		id, ok := parseTelegramID(m.submit.idInput.Value())
		if !ok {
			m.errMsg = m.msgs.T(i18n.KeyErrInvalidID)
			return m, nil
		}
		m.submit.busy = true
		m.errMsg = ""
		m.log.Info("resetting password with old password", logger.TelegramID(id))
		return m, m.resetWithOld(id, m.submit.oldPass.Value(), newPass)
	}

	m.submit.busy = true
	m.errMsg = ""
	m.log.Info("resetting password with code", logger.TelegramID(m.submit.telegramID))
	return m, m.resetWithCode(m.submit.telegramID, m.submit.code.Value(), newPass)
}

func (m Model) handleResetResult(msg resetResult) (tea.Model, tea.Cmd) {
	if m.step != stepSubmitPassword {
		return m, nil
	}
	m.submit.busy = false

	if msg.err != nil {
		m.errMsg = m.errorText(msg.err)
		m.log.Warn("password reset failed", logger.Err(msg.err))
		return m, nil
	}

	m.step = stepDone
	m.errMsg = ""
	m.info = m.msgs.T(i18n.KeyResetDone)
	m.log.Info("password reset succeeded")

	// Hold the success screen for the fixed delay, then leave for login.
	return m, tea.Tick(m.redirectDelay, func(time.Time) tea.Msg {
		return redirectTick{}
	})
}

// errorText prefers the server-provided message and falls back to the
// generic localized error.
func (m Model) errorText(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return m.msgs.T(i18n.KeyErrGeneric)
}
