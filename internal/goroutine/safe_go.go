// Package goroutine запускает фоновые задачи сервера так, чтобы panic
// в одной из них не ронял процесс.
package goroutine

import (
	"context"
	"runtime/debug"

	"github.com/ignatzorin/bulafix-backend/internal/logger"
)

// PanicLogger принимает сообщение о перехваченном panic.
type PanicLogger interface {
	Errorf(format string, args ...interface{})
}

// Runner запускает именованные фоновые задачи.
type Runner struct {
	log PanicLogger
}

func NewRunner(log PanicLogger) *Runner {
	return &Runner{log: log}
}

// Go запускает fn в отдельной горутине.
func (r *Runner) Go(name string, fn func()) {
	go func() {
		defer r.handlePanic(name)
		fn()
	}()
}

// GoWithContext запускает fn с контекстом; отмену fn отслеживает сама.
func (r *Runner) GoWithContext(ctx context.Context, name string, fn func(context.Context)) {
	go func() {
		defer r.handlePanic(name)
		fn(ctx)
	}()
}

func (r *Runner) handlePanic(name string) {
	if rec := recover(); rec != nil {
		r.log.Errorf("goroutine %q: panic: %v\n%s", name, rec, debug.Stack())
	}
}

// GoWithContext запускает задачу с логированием panic в общий логгер.
func GoWithContext(ctx context.Context, name string, fn func(context.Context)) {
	NewRunner(logger.Log).GoWithContext(ctx, name, fn)
}
