package vtcore

// HostCallbacks is the set of notifications the core raises for the host
// front-end to react to; none of them block or return a value the core
// needs back, except SetColor (spec §6: "parse spec ... return false on
// failure").
type HostCallbacks interface {
	Bell()
	SetTitle(title string)
	ResetTitle()
	ResetColors()
	SetCursorVisibility(visible bool)
	SetReverseVideo(on bool)
	SetPointerMotion(on bool)
	SetUrgency(urgent bool)
	SetColor(index int, spec string) bool
}

// NopCallbacks implements HostCallbacks by doing nothing; SetColor reports
// success so a host that doesn't care about palette overrides doesn't spam
// the diagnostic log.
type NopCallbacks struct{}

func (NopCallbacks) Bell()                     {}
func (NopCallbacks) SetTitle(string)           {}
func (NopCallbacks) ResetTitle()               {}
func (NopCallbacks) ResetColors()              {}
func (NopCallbacks) SetCursorVisibility(bool)  {}
func (NopCallbacks) SetReverseVideo(bool)      {}
func (NopCallbacks) SetPointerMotion(bool)     {}
func (NopCallbacks) SetUrgency(bool)           {}
func (NopCallbacks) SetColor(int, string) bool { return true }

var _ HostCallbacks = NopCallbacks{}

func (t *Terminal) callbacks() HostCallbacks {
	if t.hostCallbacks == nil {
		return NopCallbacks{}
	}
	return t.hostCallbacks
}

// ScrollbackStore receives rows that scroll off the top of the primary
// screen's scroll region. The core never reads them back — paging and
// search over scrollback stay a host concern.
type ScrollbackStore interface {
	Push(row []Cell)
	Len() int
	Line(i int) []Cell
}

// NoopScrollback discards every pushed row.
type NoopScrollback struct{}

func (NoopScrollback) Push([]Cell)      {}
func (NoopScrollback) Len() int         { return 0 }
func (NoopScrollback) Line(int) []Cell  { return nil }

var _ ScrollbackStore = NoopScrollback{}
