package ui

import (
	"reflect"
	"testing"
)

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{CmdImport, "import"},
		{CmdDeleteCurrent, "delete-current"},
		{CmdCustomOrder, "custom-order"},
		{CmdOpenGifFolder, "open-gif-folder"},
		{CmdToggleAutoAdvance, "toggle-auto-advance"},
		{CmdShow, "show"},
		{CmdHide, "hide"},
		{CmdQuit, "quit"},
		{Command(99), "unknown"},
	}

	for _, test := range tests {
		if got := test.cmd.String(); got != test.want {
			t.Errorf("Command(%d).String() = %q, want %q", int(test.cmd), got, test.want)
		}
	}
}

func TestHandlersCoverAllCommands(t *testing.T) {
	ps := &PetSurface{}
	handlers := ps.handlers()

	commands := []Command{
		CmdImport, CmdDeleteCurrent, CmdCustomOrder, CmdOpenGifFolder,
		CmdToggleAutoAdvance, CmdShow, CmdHide, CmdQuit,
	}
	for _, cmd := range commands {
		if handlers[cmd] == nil {
			t.Errorf("no handler registered for %s", cmd)
		}
	}
	if len(handlers) != len(commands) {
		t.Errorf("handlers() has %d entries, want %d", len(handlers), len(commands))
	}
}

func TestParseOrderInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{"simple", "2,1,3", []int{2, 1, 3}, false},
		{"whitespace tolerated", " 2 , 1 , 3 ", []int{2, 1, 3}, false},
		{"single value", "1", []int{1}, false},
		{"empty input", "", nil, true},
		{"trailing comma", "1,2,", nil, true},
		{"non-numeric", "1,two,3", nil, true},
		{"decimal", "1.5,2", nil, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := parseOrderInput(test.input)
			if test.wantErr {
				if err == nil {
					t.Fatalf("parseOrderInput(%q) expected error, got %v", test.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseOrderInput(%q) unexpected error: %v", test.input, err)
			}
			if !reflect.DeepEqual(got, test.want) {
				t.Errorf("parseOrderInput(%q) = %v, want %v", test.input, got, test.want)
			}
		})
	}
}
