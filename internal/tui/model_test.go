package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rocketscienceinc/tictactoe-board/internal/cell"
	"github.com/rocketscienceinc/tictactoe-board/internal/dialog"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDispatcher struct {
	messages []entity.Message
	err      error
}

func (that *fakeDispatcher) Dispatch(_ context.Context, msg entity.Message) error {
	that.messages = append(that.messages, msg)
	return that.err
}

func newModel(t *testing.T) (Model, *fakeDispatcher) {
	t.Helper()

	dispatcher := &fakeDispatcher{}
	model := New(context.Background(), dispatcher, make(chan usecase.Frame), entity.DefaultSymbols(), Theme{
		Accent:    lipgloss.Color("205"),
		Highlight: lipgloss.Color("42"),
	})

	return model, dispatcher
}

func emptyFrame() usecase.Frame {
	return usecase.Frame{
		Round:         "round-1",
		Cells:         cell.Grid(entity.Grid{}, entity.DefaultSymbols()),
		Dialog:        dialog.Closed(),
		CurrentPlayer: entity.PlayerOne,
		Phase:         entity.PhaseAwaitingMove,
	}
}

func update(t *testing.T, model Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := model.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)

	return updated, cmd
}

func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()

	require.NotNil(t, cmd)
	return cmd()
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_Frames(t *testing.T) {
	t.Run("Frame makes the model ready", func(t *testing.T) {
		model, _ := newModel(t)
		assert.Contains(t, model.View(), "Starting")

		// When: the first frame arrives
		model, cmd := update(t, model, frameMsg(emptyFrame()))

		// Then: the board is drawn and the model waits for the next frame
		assert.True(t, model.ready)
		assert.NotNil(t, cmd)
		assert.Contains(t, model.View(), title)
		assert.Contains(t, model.View(), "X to move")
	})

	t.Run("Closed frame stream quits", func(t *testing.T) {
		frames := make(chan usecase.Frame)
		close(frames)

		msg := waitForFrame(frames)()

		assert.Equal(t, framesClosedMsg{}, msg)

		model, _ := newModel(t)
		_, cmd := update(t, model, msg)
		assert.Equal(t, tea.QuitMsg{}, runCmd(t, cmd))
	})
}

func TestModel_Keys(t *testing.T) {
	t.Run("Enter activates the focused cell", func(t *testing.T) {
		// Given: a ready model focused on the top-left cell
		model, dispatcher := newModel(t)
		model, _ = update(t, model, frameMsg(emptyFrame()))

		// When: focus moves right and down, then enter is pressed
		model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyRight})
		model, _ = update(t, model, keyRunes("j"))
		_, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
		runCmd(t, cmd)

		// Then: the move for (1, 1) is dispatched
		require.Len(t, dispatcher.messages, 1)
		assert.Equal(t, entity.MoveRequested{Row: 1, Col: 1}, dispatcher.messages[0])
	})

	t.Run("Focus stays on the board", func(t *testing.T) {
		model, _ := newModel(t)
		model, _ = update(t, model, frameMsg(emptyFrame()))

		model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyUp})
		model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyLeft})

		assert.Equal(t, entity.Coord{}, model.focus)

		for range 5 {
			model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyDown})
			model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyRight})
		}

		assert.Equal(t, entity.Coord{Row: 2, Col: 2}, model.focus)
	})

	t.Run("Reset is routed to the dispatcher", func(t *testing.T) {
		model, dispatcher := newModel(t)
		model, _ = update(t, model, frameMsg(emptyFrame()))

		_, cmd := update(t, model, keyRunes("r"))
		runCmd(t, cmd)

		assert.Equal(t, []entity.Message{entity.ResetRequested{}}, dispatcher.messages)
	})

	t.Run("Quit", func(t *testing.T) {
		model, _ := newModel(t)

		_, cmd := update(t, model, keyRunes("q"))

		assert.Equal(t, tea.QuitMsg{}, runCmd(t, cmd))
	})

	t.Run("Dispatch error is shown in the status line", func(t *testing.T) {
		model, dispatcher := newModel(t)
		dispatcher.err = errors.New("dispatcher is not running")
		model, _ = update(t, model, frameMsg(emptyFrame()))

		_, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
		model, _ = update(t, model, runCmd(t, cmd))

		assert.Contains(t, model.View(), "dispatcher is not running")
	})
}

func TestModel_Dialog(t *testing.T) {
	finishedFrame := func() usecase.Frame {
		frame := emptyFrame()
		frame.Phase = entity.PhaseFinished
		frame.Outcome = entity.Win(entity.PlayerOne, entity.Lines[0])
		frame.Dialog = dialog.ForOutcome(frame.Outcome, entity.DefaultSymbols())
		return frame
	}

	t.Run("Dialog is drawn over the board", func(t *testing.T) {
		model, _ := newModel(t)
		model, _ = update(t, model, frameMsg(finishedFrame()))

		assert.Contains(t, model.View(), "X wins!")
	})

	t.Run("Play again requests a reset", func(t *testing.T) {
		model, dispatcher := newModel(t)
		model, _ = update(t, model, frameMsg(finishedFrame()))

		_, cmd := update(t, model, keyRunes("p"))
		runCmd(t, cmd)

		assert.Equal(t, []entity.Message{entity.ResetRequested{}}, dispatcher.messages)
	})

	t.Run("Escape dismisses the overlay", func(t *testing.T) {
		model, dispatcher := newModel(t)
		model, _ = update(t, model, frameMsg(finishedFrame()))

		_, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyEsc})
		runCmd(t, cmd)

		assert.Equal(t, []entity.Message{entity.OverlayDismissed{}}, dispatcher.messages)
	})

	t.Run("Board keys are ignored while the dialog is open", func(t *testing.T) {
		model, dispatcher := newModel(t)
		model, _ = update(t, model, frameMsg(finishedFrame()))

		_, cmd := update(t, model, keyRunes("r"))

		assert.Nil(t, cmd)
		assert.Empty(t, dispatcher.messages)
	})

	t.Run("Click outside the dialog dismisses it", func(t *testing.T) {
		model, dispatcher := newModel(t)
		model, _ = update(t, model, frameMsg(finishedFrame()))
		box := model.dialogRect()

		// When: clicking inside the box nothing happens
		_, cmd := update(t, model, tea.MouseMsg{X: box.x + 1, Y: box.y + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		assert.Nil(t, cmd)

		// When: clicking outside it the overlay is dismissed
		_, cmd = update(t, model, tea.MouseMsg{X: box.x + box.width + 1, Y: box.y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		runCmd(t, cmd)

		assert.Equal(t, []entity.Message{entity.OverlayDismissed{}}, dispatcher.messages)
	})
}

func TestModel_Mouse(t *testing.T) {
	t.Run("Left click activates the cell under the pointer", func(t *testing.T) {
		model, dispatcher := newModel(t)
		model, _ = update(t, model, frameMsg(emptyFrame()))
		width, height := model.cellSize()

		// When: clicking inside the bottom-middle cell
		model, cmd := update(t, model, tea.MouseMsg{
			X:      width + 1,
			Y:      boardTop + 2*height + 1,
			Action: tea.MouseActionPress,
			Button: tea.MouseButtonLeft,
		})
		runCmd(t, cmd)

		// Then: its move is dispatched and it takes focus
		assert.Equal(t, []entity.Message{entity.MoveRequested{Row: 2, Col: 1}}, dispatcher.messages)
		assert.Equal(t, entity.Coord{Row: 2, Col: 1}, model.focus)
	})

	t.Run("Clicks outside the board are ignored", func(t *testing.T) {
		model, _ := newModel(t)
		model, _ = update(t, model, frameMsg(emptyFrame()))
		width, _ := model.cellSize()

		_, cmd := update(t, model, tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		assert.Nil(t, cmd)

		_, cmd = update(t, model, tea.MouseMsg{X: 3*width + 1, Y: boardTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		assert.Nil(t, cmd)
	})

	t.Run("Releases and other buttons are ignored", func(t *testing.T) {
		model, _ := newModel(t)
		model, _ = update(t, model, frameMsg(emptyFrame()))

		_, cmd := update(t, model, tea.MouseMsg{X: 1, Y: boardTop + 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
		assert.Nil(t, cmd)

		_, cmd = update(t, model, tea.MouseMsg{X: 1, Y: boardTop + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
		assert.Nil(t, cmd)
	})
}

func TestOverlayAt(t *testing.T) {
	base := "aaaaaa\nbbbbbb\ncccccc"

	// When: a 2x2 box is placed at (2, 1)
	out := overlayAt(base, "XX\nYY", 2, 1)

	// Then: only the covered cells change
	assert.Equal(t, "aaaaaa\nbbXXbb\nccYYcc", out)
}

func TestCentered(t *testing.T) {
	box := centered(20, 10, 6, 4)

	assert.Equal(t, rect{x: 7, y: 3, width: 6, height: 4}, box)
	assert.True(t, box.contains(7, 3))
	assert.False(t, box.contains(13, 3))
	assert.Equal(t, 0, centered(4, 4, 10, 10).x)
}
