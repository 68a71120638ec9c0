package prng

import "log"

// LogKind is a kind of reported event.
type LogKind int

const (
	// LogZeroState is reported when draw is attempted from zero state.
	// Arguments: none.
	LogZeroState LogKind = iota
	// LogInvalidRange is reported when ranged sampling gets empty range.
	// Arguments: min, max int.
	LogInvalidRange
	// LogRestored is reported after RestoreState.
	// Arguments: previous, restored uint32.
	LogRestored
	LogMAX
)

// Logger is a hook for generator events.
type Logger interface {
	Report(event LogKind, g *Generator, v ...interface{})
}

// DefaultLogger prints events with standard log package.
type DefaultLogger struct{}

// Report implements Logger.Report.
func (d DefaultLogger) Report(event LogKind, g *Generator, v ...interface{}) {
	switch event {
	case LogZeroState:
		log.Printf("xorshift32: draw from zero state refused")
	case LogInvalidRange:
		min := v[0].(int)
		max := v[1].(int)
		log.Printf("xorshift32: invalid range [%d, %d)", min, max)
	case LogRestored:
		prev := v[0].(uint32)
		restored := v[1].(uint32)
		if restored == 0 {
			log.Printf("xorshift32: state %d replaced with zero state, next draw will fail", prev)
		} else {
			log.Printf("xorshift32: state %d restored to %d", prev, restored)
		}
	default:
		args := []interface{}{"xorshift32: unexpected event:", event, g.SaveState()}
		args = append(args, v...)
		log.Print(args...)
	}
}

// NoopLogger implements Logger with no logging at all.
type NoopLogger struct{}

// Report implements Logger.Report.
func (d NoopLogger) Report(event LogKind, g *Generator, v ...interface{}) {}

func (g *Generator) report(event LogKind, v ...interface{}) {
	if g.logger != nil {
		g.logger.Report(event, g, v...)
	}
}
