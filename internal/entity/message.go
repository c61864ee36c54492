package entity

type MessageKind string

const (
	KindMoveRequested    MessageKind = "move:requested"
	KindOutcomeReached   MessageKind = "outcome:reached"
	KindResetRequested   MessageKind = "reset:requested"
	KindOverlayDismissed MessageKind = "overlay:dismissed"
)

// Message is anything the dispatcher loop accepts on its queue.
type Message interface {
	Kind() MessageKind
}

// MoveRequested is raised by a cell when it is activated.
type MoveRequested struct {
	Row int
	Col int
}

func (MoveRequested) Kind() MessageKind { return KindMoveRequested }

// OutcomeReached is raised when the presentation delay of a terminal move elapses.
type OutcomeReached struct {
	Round string
}

func (OutcomeReached) Kind() MessageKind { return KindOutcomeReached }

type ResetRequested struct{}

func (ResetRequested) Kind() MessageKind { return KindResetRequested }

// OverlayDismissed closes the dialog without starting a new round.
type OverlayDismissed struct{}

func (OverlayDismissed) Kind() MessageKind { return KindOverlayDismissed }

type NotificationKind string

const (
	NotifyPlayerWon NotificationKind = "player:won"
	NotifyTie       NotificationKind = "game:tie"
	NotifyReset     NotificationKind = "game:reset"
)

// Notification is surfaced to the embedding host.
type Notification struct {
	Kind   NotificationKind `json:"kind"`
	Player Mark             `json:"player,omitempty"`
	Round  string           `json:"round"`
}
