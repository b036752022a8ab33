package engine

import (
	"fmt"
	"log/slog"
)

// AppExit requests the app to stop at the end of the current frame.
type AppExit struct {
	Code int
}

// AppExitStatus records whether an AppExit message was processed.
// Runners check it after each frame.
type AppExitStatus struct {
	Requested bool
	Code      int
}

// Err returns nil for a clean exit, an *ExitError otherwise.
func (s AppExitStatus) Err() error {
	if !s.Requested || s.Code == 0 {
		return nil
	}

	return &ExitError{Code: s.Code}
}

type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("app exited with code %d", e.Code)
}

func readAppExitSystem(reader *MessageReader[AppExit], status *AppExitStatus) {
	for _, exit := range reader.Read() {
		if status.Requested {
			continue
		}

		slog.Debug("App exit requested", slog.Int("code", exit.Code))

		status.Requested = true
		status.Code = exit.Code
	}
}
