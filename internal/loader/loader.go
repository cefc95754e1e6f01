// Package loader performs file reads off the editor tick. Results land in a
// single-slot mailbox the session drains once per tick; when a new result
// arrives before the previous one was read, the unread one is stale and is
// dropped.
package loader

import "os"

// Result is one finished read request.
type Result struct {
	Path string
	Data []byte
	Err  error
}

// Loader owns the mailbox. The zero value is not usable; call New.
type Loader struct {
	results chan Result
}

// New returns a loader with an empty mailbox.
func New() *Loader {
	return &Loader{results: make(chan Result, 1)}
}

// Request starts reading path in the background. It never blocks. The
// caller decides whether a delivered result still matters; requests are not
// cancelled in flight.
func (l *Loader) Request(path string) {
	go func() {
		data, err := os.ReadFile(path)
		l.deliver(Result{Path: path, Data: data, Err: err})
	}()
}

// Poll removes a finished result from the mailbox without blocking.
func (l *Loader) Poll() (Result, bool) {
	select {
	case res := <-l.results:
		return res, true
	default:
		return Result{}, false
	}
}

// deliver places a result in the mailbox, displacing an unread one. The
// newest result wins so the reading goroutine can always finish.
func (l *Loader) deliver(res Result) {
	for {
		select {
		case l.results <- res:
			return
		default:
		}
		select {
		case <-l.results:
		default:
		}
	}
}
