package domain

// HandleState is the enumeration progress of one directory frame.
type HandleState uint8

const (
	// StateUnopened means the directory was discovered but not opened yet.
	StateUnopened HandleState = iota
	// StateOpening means an open operation is in flight.
	StateOpening
	// StateOpen means the directory handle is open and entries are being read.
	StateOpen
	// StateExhausted means every entry has been read.
	StateExhausted
)

// String returns a readable name for the state.
func (s HandleState) String() string {
	switch s {
	case StateUnopened:
		return "unopened"
	case StateOpening:
		return "opening"
	case StateOpen:
		return "open"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}
