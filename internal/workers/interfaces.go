// Package workers runs background housekeeping next to the HTTP server.
// Every worker runs in its own goroutine and stops when its context is
// cancelled.
package workers

import "context"

// Worker is a background task. Run blocks until ctx is cancelled.
//
// Example implementation:
//
//	type tickWorker struct{ interval time.Duration }
//
//	func (w *tickWorker) Run(ctx context.Context) {
//	    ticker := time.NewTicker(w.interval)
//	    defer ticker.Stop()
//	    for {
//	        select {
//	        case <-ctx.Done():
//	            return
//	        case <-ticker.C:
//	            // do work
//	        }
//	    }
//	}
type Worker interface {
	Run(ctx context.Context)
}
