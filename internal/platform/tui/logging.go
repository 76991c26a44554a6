package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

// logEvents writes game events to the logger. Resets are worth an info
// line; everything else is debug noise.
func logEvents(logger *log.Logger, gameID string, events []core.Event) {
	for _, e := range events {
		switch e.Name {
		case "reset":
			logger.Info("snake reset", "game", gameID, "detail", e.Detail)
		case "boost":
			logger.Info("boost", "game", gameID, "state", e.Detail)
		default:
			logger.Debug(e.Name, "game", gameID, "detail", e.Detail)
		}
	}
}
