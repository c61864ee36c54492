// Package dialog is the modal shown when a round ends.
package dialog

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

const (
	TieTitle = "It's a tie!"
	TieText  = "Nobody completed a line."

	playAgainHint = "[p] play again   [esc] close"
)

type Dialog struct {
	open  bool
	title string
	text  string
}

func Closed() Dialog {
	return Dialog{}
}

func Opened(title, text string) Dialog {
	return Dialog{open: true, title: title, text: text}
}

// ForOutcome opens a dialog describing a terminal outcome. Ongoing outcomes yield a closed dialog.
func ForOutcome(outcome entity.Outcome, symbols entity.Symbols) Dialog {
	switch outcome.Kind {
	case entity.OutcomeWin:
		symbol := symbols.For(outcome.Winner)
		return Opened(fmt.Sprintf("%s wins!", symbol), fmt.Sprintf("Player %s completed a line.", symbol))
	case entity.OutcomeTie:
		return Opened(TieTitle, TieText)
	default:
		return Closed()
	}
}

func (that Dialog) IsOpen() bool { return that.open }

func (that Dialog) Title() string { return that.title }

func (that Dialog) Text() string { return that.text }

// ClickOverlay - closes the dialog without starting a new round.
func (that Dialog) ClickOverlay() Dialog {
	that.open = false
	return that
}

// PlayAgain - closes the dialog and raises a reset request.
func (that Dialog) PlayAgain() (Dialog, entity.ResetRequested) {
	return that.ClickOverlay(), entity.ResetRequested{}
}

type Styles struct {
	Box   lipgloss.Style
	Title lipgloss.Style
	Text  lipgloss.Style
	Hint  lipgloss.Style
}

func NewStyles(accent lipgloss.Color) Styles {
	return Styles{
		Box:   lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(accent).Padding(1, 3),
		Title: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Text:  lipgloss.NewStyle(),
		Hint:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// View - renders the modal box, or nothing while closed.
func (that Dialog) View(styles Styles) string {
	if !that.open {
		return ""
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.Title.Render(that.title),
		"",
		styles.Text.Render(that.text),
		"",
		styles.Hint.Render(playAgainHint),
	)

	return styles.Box.Render(body)
}
