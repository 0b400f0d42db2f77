// Package goroutine runs background work whose failure must reach the caller.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"ticketdesk/internal/shared/logger"
)

// Go runs fn in its own goroutine and reports its outcome on the returned
// channel. A panic is logged with its stack and delivered as an error, so a
// crashing listener surfaces the same way as one that fails to bind. The
// channel is buffered and receives exactly one value.
func Go(log logger.Interface, name string, fn func() error) <-chan error {
	done := make(chan error, 1)
	go func() {
		var err error
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
				err = fmt.Errorf("%s panicked: %v", name, r)
			}
			done <- err
		}()
		err = fn()
	}()
	return done
}
