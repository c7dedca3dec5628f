package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/tvnav/internal/focus"
	"github.com/atomicstack/tvnav/internal/store"
	"github.com/atomicstack/tvnav/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

const (
	chatAuthor    = "you"
	sendID        = "send"
	sendWidth     = 8
	chatFirstLine = 2
)

func messageID(id int64) string { return "message-" + strconv.FormatInt(id, 10) }

func (m *Model) layoutChat(width int) *layout {
	lay := newLayout(width)
	lay.text(0, 0, styles.Title.Render("Community"))
	y := chatFirstLine
	if len(m.messages) == 0 {
		lay.text(0, y, styles.Muted.Render("No messages yet. Say hello!"))
		y++
	}
	for _, msg := range m.messages {
		lay.add(focus.Element{
			ID:  messageID(msg.ID),
			Key: focus.Key{Kind: "message", Target: strconv.FormatInt(msg.ID, 10)},
		}, box{x: 0, y: y, w: width, h: 1}, drawMessage(msg, width))
		y++
	}
	y++
	fieldWidth := width - sendWidth - 2
	if fieldWidth < 10 {
		fieldWidth = 10
	}
	m.draft.Width = fieldWidth - ansi.StringWidth(m.draft.Prompt) - 1
	lay.add(focus.Element{
		ID:        draftID,
		Key:       focus.Key{Kind: "draft"},
		Text:      true,
		GuardBack: m.draftDirty,
		OnSelect:  m.sendDraft,
	}, box{x: 0, y: y, w: fieldWidth, h: 1}, m.drawField(&m.draft, fieldWidth))
	lay.add(focus.Element{
		ID:       sendID,
		Key:      focus.Key{Kind: "send"},
		OnSelect: m.sendDraft,
	}, box{x: fieldWidth + 2, y: y, w: sendWidth, h: 1}, drawButton("Send", sendWidth))
	return lay
}

func drawMessage(msg store.Message, width int) func(bool) string {
	author := styles.Author
	if msg.Author == chatAuthor {
		author = styles.SelfAuthor
	}
	stamp := msg.At.Format("15:04")
	text := fmt.Sprintf("%s %s %s", styles.Muted.Render(stamp), author.Render(msg.Author+":"), msg.Body)
	return func(focused bool) string {
		line := ansi.Truncate(text, width, "…")
		if focused {
			return styles.FocusRing.Render("▌") + ansi.Truncate(text, width-1, "…")
		}
		return line
	}
}

func (m *Model) sendDraft(focus.Element) tea.Cmd {
	body := strings.TrimSpace(m.draft.Value())
	if body == "" {
		m.setInfo("Type a message first")
		return nil
	}
	m.draft.Reset()
	return m.bus.Execute(command.Request{
		ID:    "chat:send",
		Label: body,
		Run: func() tea.Msg {
			return m.persist("", func() error {
				_, err := m.store.AppendMessage(chatAuthor, body)
				return err
			})
		},
	})
}
