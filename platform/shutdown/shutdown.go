// Package shutdown coordinates graceful process shutdown. Components
// register closers at startup; when SIGINT or SIGTERM arrives the closers
// run concurrently under a grace period, then the process exits.
package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rohanthewiz/logger"
)

const gracePeriod = 10 * time.Second

type closer struct {
	name string
	fn   func() error
}

var (
	mu         sync.Mutex
	closers    []closer
	isShutdown bool
)

// RegisterCloser adds a named cleanup function to run at shutdown
func RegisterCloser(name string, fn func() error) {
	mu.Lock()
	defer mu.Unlock()
	closers = append(closers, closer{name: name, fn: fn})
}

// InProgress reports whether a shutdown has begun
func InProgress() bool {
	mu.Lock()
	defer mu.Unlock()
	return isShutdown
}

// Listen installs the signal handler. On the first SIGINT/SIGTERM it runs
// all registered closers, waits out the grace period at most, and exits.
func Listen() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Info("Received shutdown signal", "signal", sig.String())

		mu.Lock()
		isShutdown = true
		toClose := make([]closer, len(closers))
		copy(toClose, closers)
		mu.Unlock()

		var wg sync.WaitGroup
		for _, cl := range toClose {
			wg.Add(1)
			go func(cl closer) {
				defer wg.Done()
				if err := cl.fn(); err != nil {
					logger.LogErr(err, "shutdown closer failed", "closer", cl.name)
				} else {
					logger.Info("Shutdown closer completed", "closer", cl.name)
				}
			}(cl)
		}

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(gracePeriod):
			logger.Info("Shutdown closers timed out", "grace", gracePeriod.String())
		}
		os.Exit(0)
	}()
}
