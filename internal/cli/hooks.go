package cli

import (
	"time"

	"github.com/charmbracelet/log"
)

// logHooks routes engine observability events to the CLI logger. The
// engine stays logger-free; this adapter is registered at command
// startup.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnCompactStart(compactType string, itemCount int) {
	h.logger.Debug("compacting", "type", compactType, "items", itemCount)
}

func (h *logHooks) OnCompactComplete(compactType string, itemCount int, duration time.Duration) {
	h.logger.Debug("compacted", "type", compactType, "items", itemCount,
		"duration", duration.Round(time.Microsecond))
}

func (h *logHooks) OnPropagationAborted(op string, iterations, itemCount int) {
	h.logger.Warn("collision propagation hit its iteration cap; result is partial",
		"op", op, "iterations", iterations, "items", itemCount)
}

func (h *logHooks) OnPlacementOverflow(itemID string, iterations int) {
	h.logger.Warn("auto-placement scan overflowed; item appended below layout",
		"item", itemID, "iterations", iterations)
}

func (h *logHooks) OnResizeReverted(itemID string) {
	h.logger.Info("resize rejected: item would collide with a static obstacle",
		"item", itemID)
}
