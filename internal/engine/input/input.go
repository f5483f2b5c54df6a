// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Command is a discrete viewer action bound to a key.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandResetView
	CommandToggleWireframe
	CommandToggleCullFace
	CommandToggleFlatShade
	CommandToggleAnimation
	CommandSpeedUp
	CommandSlowDown
	CommandScreenshot
)

var commandNames = [...]string{
	CommandNone:            "none",
	CommandQuit:            "quit",
	CommandResetView:       "reset-view",
	CommandToggleWireframe: "toggle-wireframe",
	CommandToggleCullFace:  "toggle-cull-face",
	CommandToggleFlatShade: "toggle-flat-shade",
	CommandToggleAnimation: "toggle-animation",
	CommandSpeedUp:         "speed-up",
	CommandSlowDown:        "slow-down",
	CommandScreenshot:      "screenshot",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}

var keyCommands = map[sdl.Keycode]Command{
	sdl.K_ESCAPE:     CommandQuit,
	sdl.K_q:          CommandQuit,
	sdl.K_r:          CommandResetView,
	sdl.K_w:          CommandToggleWireframe,
	sdl.K_b:          CommandToggleCullFace,
	sdl.K_f:          CommandToggleFlatShade,
	sdl.K_a:          CommandToggleAnimation,
	sdl.K_PLUS:       CommandSpeedUp,
	sdl.K_EQUALS:     CommandSpeedUp,
	sdl.K_KP_PLUS:    CommandSpeedUp,
	sdl.K_MINUS:      CommandSlowDown,
	sdl.K_UNDERSCORE: CommandSlowDown,
	sdl.K_KP_MINUS:   CommandSlowDown,
	sdl.K_F12:        CommandScreenshot,
}

// CommandForKey returns the command bound to key, or CommandNone.
func CommandForKey(key sdl.Keycode) Command {
	return keyCommands[key]
}

// Button identifies the mouse button held during a drag.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

func buttonFromSDL(b uint8) Button {
	switch b {
	case sdl.BUTTON_LEFT:
		return ButtonLeft
	case sdl.BUTTON_MIDDLE:
		return ButtonMiddle
	case sdl.BUTTON_RIGHT:
		return ButtonRight
	}
	return ButtonNone
}

// Drag is mouse motion, in pixels, while a button is held.
type Drag struct {
	Button Button
	DX, DY float32
}

// Input collects the commands, drags and resizes of one frame.
type Input struct {
	commands []Command
	drags    []Drag
	held     Button

	resized       bool
	width, height int
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		commands: make([]Command, 0, 8),
		drags:    make([]Drag, 0, 16),
	}
}

// Update polls SDL events and converts them to commands and drags.
// Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.reset()

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if i.handle(event) {
			quit = true
		}
	}
	return quit
}

func (i *Input) reset() {
	i.commands = i.commands[:0]
	i.drags = i.drags[:0]
	i.resized = false
}

// handle records one event and reports whether it asks to quit.
func (i *Input) handle(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			i.resized = true
			i.width, i.height = int(e.Data1), int(e.Data2)
		}

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN {
			return false
		}
		cmd := CommandForKey(e.Keysym.Sym)
		if cmd == CommandNone {
			return false
		}
		i.commands = append(i.commands, cmd)
		return cmd == CommandQuit

	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONDOWN {
			i.held = buttonFromSDL(e.Button)
		} else if e.Type == sdl.MOUSEBUTTONUP {
			i.held = ButtonNone
		}

	case *sdl.MouseMotionEvent:
		if i.held == ButtonNone {
			return false
		}
		i.drags = append(i.drags, Drag{
			Button: i.held,
			DX:     float32(e.XRel),
			DY:     float32(e.YRel),
		})
	}
	return false
}

// Commands returns the commands from the last Update, in arrival order.
func (i *Input) Commands() []Command {
	return i.commands
}

// Drags returns the drags from the last Update.
func (i *Input) Drags() []Drag {
	return i.drags
}

// Resized reports whether the window changed size during the last Update,
// and the new size.
func (i *Input) Resized() (width, height int, ok bool) {
	return i.width, i.height, i.resized
}
