package tui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DebugLogPath is the fixed path for debug logs, relative to the working directory.
const DebugLogPath = "cellgrid-debug.log"

// DebugLogger writes key, mode and grid events as JSON lines. A nil
// *DebugLogger discards everything, so it can be handed to the session as-is.
type DebugLogger struct {
	mu    sync.Mutex
	w     io.WriteCloser
	seq   int
	start time.Time
}

// debugLog is nil unless --debug is set.
var debugLog *DebugLogger

func newDebugLogger(w io.WriteCloser) *DebugLogger {
	return &DebugLogger{w: w, start: time.Now()}
}

// InitDebugLogger opens DebugLogPath when enabled, truncating any previous run.
func InitDebugLogger(enabled bool) error {
	debugLog = nil
	if !enabled {
		return nil
	}

	f, err := os.OpenFile(DebugLogPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}
	debugLog = newDebugLogger(f)
	debugLog.Log("DEBUG_START", map[string]any{
		"pid":  os.Getpid(),
		"time": debugLog.start.Format(time.RFC3339),
	})
	return nil
}

// CloseDebugLogger flushes the final entry and closes the log file.
func CloseDebugLogger() {
	if debugLog == nil {
		return
	}
	debugLog.Log("DEBUG_END", nil)
	_ = debugLog.close()
	debugLog = nil
}

// Log writes one entry. It satisfies session.Logger.
func (d *DebugLogger) Log(event string, data map[string]any) {
	if d == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.w == nil {
		return
	}

	d.seq++
	entry := make(map[string]any, len(data)+3)
	for k, v := range data {
		entry[k] = v
	}
	entry["seq"] = d.seq
	entry["ms"] = time.Since(d.start).Milliseconds()
	entry["event"] = event

	b, err := json.Marshal(entry)
	if err != nil {
		b, _ = json.Marshal(map[string]any{"seq": d.seq, "event": event, "marshal_error": err.Error()})
	}
	_, _ = d.w.Write(append(b, '\n'))
}

func (d *DebugLogger) close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.w == nil {
		return nil
	}
	err := d.w.Close()
	d.w = nil
	return err
}

func logKey(msg tea.KeyMsg, mode Mode) {
	if debugLog == nil {
		return
	}
	entry := map[string]any{"key": msg.String(), "mode": mode.String()}
	if msg.Paste {
		entry["key"] = "paste"
		entry["bytes"] = len(string(msg.Runes))
	}
	debugLog.Log("KEY_PRESS", entry)
}

func logModeChange(from, to Mode, reason string) {
	debugLog.Log("MODE_CHANGE", map[string]any{
		"from":   from.String(),
		"to":     to.String(),
		"reason": reason,
	})
}

func logError(context string, err error) {
	debugLog.Log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}
