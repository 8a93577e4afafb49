package teaui

import "tableflip.dev/moodcal/pkg/session"

type notice struct {
	message  string
	severity session.Severity
}

// Bridge collects what the calendar core reports while handling a message
// so the model can turn it into Bubble Tea commands afterwards. It
// satisfies session.Notifier, session.Effects and session.Renderer.
type Bridge struct {
	notices   []notice
	float     bool
	celebrate bool
}

// NewBridge creates an empty bridge.
func NewBridge() *Bridge { return &Bridge{} }

func (b *Bridge) Notify(message string, severity session.Severity) {
	b.notices = append(b.notices, notice{message: message, severity: severity})
}

func (b *Bridge) FloatingEmojis() { b.float = true }

func (b *Bridge) Celebrate() { b.celebrate = true }

// Redraw is a no-op; Bubble Tea renders after every update.
func (b *Bridge) Redraw() {}

type drained struct {
	notices   []notice
	float     bool
	celebrate bool
}

func (b *Bridge) drain() drained {
	d := drained{notices: b.notices, float: b.float, celebrate: b.celebrate}
	b.notices = nil
	b.float = false
	b.celebrate = false
	return d
}
