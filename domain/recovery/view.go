package recovery

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"recovery-cli/pkg/api"
	"recovery-cli/pkg/i18n"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
)

func (m Model) View() string {
	var b strings.Builder

	switch m.step {
	case stepIdentify:
		m.viewIdentify(&b)
	case stepChooseChannel:
		m.viewChoose(&b)
	case stepRequestCode:
		m.viewRequest(&b)
	case stepSubmitPassword:
		m.viewSubmit(&b)
	case stepDone:
		m.viewDone(&b)
	}

	return b.String()
}

func (m Model) viewIdentify(b *strings.Builder) {
	b.WriteString(titleStyle.Render(m.msgs.T(i18n.KeyTitleIdentify)))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render(m.msgs.T(i18n.KeyPromptID)))
	b.WriteString("\n")
	b.WriteString(m.identify.input.View())
	b.WriteString("\n")
	if m.identify.busy {
		b.WriteString(helpStyle.Render(m.msgs.T(i18n.KeySending)))
		b.WriteString("\n")
	}
	m.viewStatus(b)
	b.WriteString(helpStyle.Render(m.msgs.T(i18n.KeyHelpIdentify)))
	b.WriteString("\n")
}

func (m Model) viewChoose(b *strings.Builder) {
	b.WriteString(titleStyle.Render(m.msgs.T(i18n.KeyTitleChoose)))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render(m.msgs.T(i18n.KeyPromptChoose)))
	b.WriteString("\n\n")

	for i, entry := range m.choose.entries {
		if i == m.choose.cursor {
			b.WriteString(cursorStyle.Render("> " + entry.label))
		} else {
			b.WriteString("  " + entry.label)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	m.viewStatus(b)
	b.WriteString(helpStyle.Render(m.msgs.T(i18n.KeyHelpChoose)))
	b.WriteString("\n")
}

func (m Model) viewRequest(b *strings.Builder) {
	b.WriteString(titleStyle.Render(m.msgs.T(i18n.KeyTitleRequest)))
	b.WriteString("\n\n")

	if m.request.channel == api.ChannelEmail {
		b.WriteString(labelStyle.Render(m.msgs.T(i18n.KeyChannelEmail, m.request.emailMasked)))
	} else {
		b.WriteString(labelStyle.Render(m.msgs.T(i18n.KeyChannelTelegram)))
	}
	b.WriteString("\n\n")

	if m.request.busy {
		b.WriteString(helpStyle.Render(m.msgs.T(i18n.KeySending)))
	} else {
		b.WriteString(m.msgs.T(i18n.KeyPromptSend))
	}
	b.WriteString("\n")
	m.viewStatus(b)
	b.WriteString(helpStyle.Render(m.msgs.T(i18n.KeyHelpRequest)))
	b.WriteString("\n")
}

func (m Model) viewSubmit(b *strings.Builder) {
	b.WriteString(titleStyle.Render(m.msgs.T(i18n.KeyTitleSubmit)))
	b.WriteString("\n\n")

	for _, f := range m.submit.fields() {
		b.WriteString(f.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.submit.busy {
		b.WriteString(helpStyle.Render(m.msgs.T(i18n.KeySending)))
		b.WriteString("\n")
	}
	m.viewStatus(b)
	b.WriteString(helpStyle.Render(m.msgs.T(i18n.KeyHelpSubmit)))
	b.WriteString("\n")
}

func (m Model) viewDone(b *strings.Builder) {
	b.WriteString(titleStyle.Render(m.msgs.T(i18n.KeyTitleDone)))
	b.WriteString("\n\n")
	b.WriteString(infoStyle.Render(m.info))
	b.WriteString("\n")
}

// viewStatus renders the transient info and error lines shared by every
// screen.
func (m Model) viewStatus(b *strings.Builder) {
	if m.info != "" && m.step != stepDone {
		b.WriteString(infoStyle.Render(m.info))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}
