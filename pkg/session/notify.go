package session

// Severity classifies a notification.
type Severity int

const (
	Info Severity = iota
	Success
	Error
)

func (s Severity) String() string {
	switch s {
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Notifier shows a fire-and-forget message to the user.
type Notifier interface {
	Notify(message string, severity Severity)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string, severity Severity)

func (f NotifierFunc) Notify(message string, severity Severity) { f(message, severity) }

// Effects plays decorative animations. Calls must return immediately; the
// session never waits on or branches on them.
type Effects interface {
	FloatingEmojis()
	Celebrate()
}

// NoEffects ignores every effect request.
type NoEffects struct{}

func (NoEffects) FloatingEmojis() {}
func (NoEffects) Celebrate()      {}

// Renderer is asked to redraw the grid after the store changed.
type Renderer interface {
	Redraw()
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func()

func (f RendererFunc) Redraw() { f() }

type nopNotifier struct{}

func (nopNotifier) Notify(string, Severity) {}

type nopRenderer struct{}

func (nopRenderer) Redraw() {}
