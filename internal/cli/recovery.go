package cli

import (
	"log/slog"
	"runtime/debug"

	"github.com/pkg/errors"
)

// recoverGame runs fn, turning a panic from a broken engine invariant into an error
func recoverGame(logger *slog.Logger, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic recovered",
				slog.Any("error", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = errors.Errorf("internal error: %v", r)
		}
	}()

	return fn()
}
