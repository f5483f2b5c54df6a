package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func keyDown(k sdl.Keycode) *sdl.KeyboardEvent {
	return &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: k}}
}

func TestCommandForKey(t *testing.T) {
	tests := []struct {
		key  sdl.Keycode
		want Command
	}{
		{sdl.K_ESCAPE, CommandQuit},
		{sdl.K_q, CommandQuit},
		{sdl.K_r, CommandResetView},
		{sdl.K_w, CommandToggleWireframe},
		{sdl.K_b, CommandToggleCullFace},
		{sdl.K_f, CommandToggleFlatShade},
		{sdl.K_a, CommandToggleAnimation},
		{sdl.K_EQUALS, CommandSpeedUp},
		{sdl.K_PLUS, CommandSpeedUp},
		{sdl.K_MINUS, CommandSlowDown},
		{sdl.K_UNDERSCORE, CommandSlowDown},
		{sdl.K_F12, CommandScreenshot},
		{sdl.K_z, CommandNone},
	}
	for _, tt := range tests {
		if got := CommandForKey(tt.key); got != tt.want {
			t.Errorf("CommandForKey(%d) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestHandleKeys(t *testing.T) {
	in := New()

	if in.handle(keyDown(sdl.K_w)) {
		t.Error("w should not quit")
	}
	in.handle(&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_a}})
	in.handle(keyDown(sdl.K_z))
	in.handle(keyDown(sdl.K_a))
	if !in.handle(keyDown(sdl.K_ESCAPE)) {
		t.Error("escape should quit")
	}

	want := []Command{CommandToggleWireframe, CommandToggleAnimation, CommandQuit}
	got := in.Commands()
	if len(got) != len(want) {
		t.Fatalf("commands = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d = %v, want %v", i, got[i], want[i])
		}
	}

	in.reset()
	if len(in.Commands()) != 0 {
		t.Error("reset kept commands")
	}
}

func TestHandleDrags(t *testing.T) {
	in := New()

	// Motion without a held button is not a drag.
	in.handle(&sdl.MouseMotionEvent{XRel: 4, YRel: 4})
	if len(in.Drags()) != 0 {
		t.Fatalf("drags = %v, want none", in.Drags())
	}

	in.handle(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_RIGHT})
	in.handle(&sdl.MouseMotionEvent{XRel: 3, YRel: -2})
	in.handle(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_RIGHT})
	in.handle(&sdl.MouseMotionEvent{XRel: 9, YRel: 9})
	in.handle(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_MIDDLE})
	in.handle(&sdl.MouseMotionEvent{XRel: -1, YRel: 5})

	want := []Drag{
		{Button: ButtonRight, DX: 3, DY: -2},
		{Button: ButtonMiddle, DX: -1, DY: 5},
	}
	got := in.Drags()
	if len(got) != len(want) {
		t.Fatalf("drags = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("drag %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestHandleResize(t *testing.T) {
	in := New()
	if _, _, ok := in.Resized(); ok {
		t.Error("fresh input reports a resize")
	}
	in.handle(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_RESIZED, Data1: 640, Data2: 480})
	w, h, ok := in.Resized()
	if !ok || w != 640 || h != 480 {
		t.Errorf("Resized() = %d, %d, %v", w, h, ok)
	}
}

func TestCommandString(t *testing.T) {
	if CommandSpeedUp.String() != "speed-up" {
		t.Errorf("String() = %q", CommandSpeedUp.String())
	}
	if Command(99).String() != "unknown" {
		t.Errorf("out of range String() = %q", Command(99).String())
	}
}
