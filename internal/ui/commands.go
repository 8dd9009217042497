package ui

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

// Command identifies a context-menu or tray action. Menu items dispatch
// through an explicit table instead of ad-hoc closures, so every action a
// menu can trigger is enumerable and testable.
type Command int

const (
	CmdImport Command = iota
	CmdDeleteCurrent
	CmdCustomOrder
	CmdOpenGifFolder
	CmdToggleAutoAdvance
	CmdShow
	CmdHide
	CmdQuit
)

// String returns the command name for logging.
func (c Command) String() string {
	switch c {
	case CmdImport:
		return "import"
	case CmdDeleteCurrent:
		return "delete-current"
	case CmdCustomOrder:
		return "custom-order"
	case CmdOpenGifFolder:
		return "open-gif-folder"
	case CmdToggleAutoAdvance:
		return "toggle-auto-advance"
	case CmdShow:
		return "show"
	case CmdHide:
		return "hide"
	case CmdQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// handlers returns the dispatch table mapping commands to surface
// operations.
func (ps *PetSurface) handlers() map[Command]func() {
	return map[Command]func(){
		CmdImport:            ps.importAnimation,
		CmdDeleteCurrent:     ps.deleteCurrent,
		CmdCustomOrder:       ps.customizeOrder,
		CmdOpenGifFolder:     ps.openGifFolder,
		CmdToggleAutoAdvance: ps.toggleAutoAdvance,
		CmdShow:              ps.Show,
		CmdHide:              ps.Hide,
		CmdQuit:              ps.Quit,
	}
}

// Dispatch runs the handler registered for cmd.
func (ps *PetSurface) Dispatch(cmd Command) {
	handler, ok := ps.handlers()[cmd]
	if !ok {
		log.Printf("No handler for pet command %s", cmd)
		return
	}
	log.Printf("Dispatching pet command %s", cmd)
	handler()
}

// parseOrderInput parses the order dialog text ("2,1,3") into 1-based
// indexes. Range and permutation validation belongs to the manager; this
// only rejects text that is not a comma-separated number list.
func parseOrderInput(text string) ([]int, error) {
	parts := strings.Split(text, ",")
	indexes := make([]int, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			return nil, fmt.Errorf("empty position in order input %q", text)
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return nil, fmt.Errorf("invalid position %q: %w", trimmed, err)
		}
		indexes = append(indexes, n)
	}
	return indexes, nil
}
