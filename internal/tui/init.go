package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/javiermolinar/cellgrid/internal/config"
)

// InitState tracks first-run conditions worth telling the user about.
type InitState struct {
	ConfigMissing  bool
	JournalMissing bool
	ConfigPath     string
	JournalPath    string
}

// DetectInitState checks for a missing config file and, when journaling is
// enabled, a journal that will be created on first write.
func DetectInitState(cfg *config.Config, configPath string) (InitState, error) {
	state := InitState{
		ConfigPath:  configPath,
		JournalPath: cfg.Journal.Path,
	}

	configMissing, err := pathMissing(state.ConfigPath)
	if err != nil {
		return InitState{}, fmt.Errorf("checking config path: %w", err)
	}
	state.ConfigMissing = configMissing

	if cfg.Journal.Enabled {
		journalMissing, err := pathMissing(state.JournalPath)
		if err != nil {
			return InitState{}, fmt.Errorf("checking journal path: %w", err)
		}
		state.JournalMissing = journalMissing
	}
	return state, nil
}

// Hint returns the startup status line for the state, or "".
func (s InitState) Hint() string {
	switch {
	case s.ConfigMissing:
		return fmt.Sprintf("No config at %s, using defaults (cellgrid config --init)", s.ConfigPath)
	case s.JournalMissing:
		return fmt.Sprintf("Journaling to new file %s", s.JournalPath)
	default:
		return ""
	}
}

// WithInitState shows the first-run hint in the status line.
func WithInitState(state InitState) ModelOption {
	return func(m *Model) {
		if hint := state.Hint(); hint != "" {
			m.statusMsg = hint
			m.statusTime = time.Now().Add(errorDuration)
		}
	}
}

func pathMissing(path string) (bool, error) {
	if path == "" {
		return true, nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if os.IsNotExist(err) {
		return true, nil
	}
	return false, err
}
