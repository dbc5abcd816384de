package recovery

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"recovery-cli/pkg/api"
)

// Commands run the network calls off the update loop and deliver their
// results back as messages. Each action is guarded by its step's busy flag,
// so at most one of each is in flight; nothing here cancels a running call.

func (m Model) fetchOptions(telegramID int64) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		options, err := client.RecoveryOptions(context.Background(), telegramID)
		return optionsResult{telegramID: telegramID, options: options, err: err}
	}
}

func (m Model) requestCode(telegramID int64, channel api.Channel) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.RequestCode(context.Background(), telegramID, channel)
		return codeResult{err: err}
	}
}

func (m Model) resetWithCode(telegramID int64, code, newPassword string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.ResetPassword(context.Background(), telegramID, code, newPassword)
		return resetResult{err: err}
	}
}

func (m Model) resetWithOld(telegramID int64, oldPassword, newPassword string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.ResetPasswordWithOld(context.Background(), telegramID, oldPassword, newPassword)
		return resetResult{err: err}
	}
}
