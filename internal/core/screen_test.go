package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@')
	if got := s.Get(3, 2); got != '@' {
		t.Errorf("expected '@', got %q", got)
	}

	// Out of bounds is ignored / returns space
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get should return space, got %q", got)
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 1, 'W', ColorOrange)

	cell := s.GetCell(1, 1)
	if cell.Rune != 'W' || cell.Color != ColorOrange {
		t.Errorf("unexpected cell %+v", cell)
	}

	if cell := s.GetCell(99, 99); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("out-of-bounds cell should be blank, got %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Error("DrawText did not place runes")
	}

	// Clipped at right edge, no panic
	s.DrawText(8, 0, "long text")
	if s.Get(9, 0) != 'o' {
		t.Errorf("expected clipped text, got %q", s.Get(9, 0))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(1, 1, 'x')
	s.Set(5, 3, 'y')

	s.Resize(4, 3)
	if s.Get(1, 1) != 'x' {
		t.Error("content inside new bounds should be preserved")
	}
	if s.Width() != 4 || s.Height() != 3 {
		t.Errorf("unexpected size %dx%d", s.Width(), s.Height())
	}

	s.Resize(8, 6)
	if s.Get(1, 1) != 'x' {
		t.Error("growing should preserve content")
	}
	if s.Get(7, 5) != ' ' {
		t.Error("new cells should be blank")
	}
}

func TestScreenBox(t *testing.T) {
	s := NewScreen(8, 5)
	s.DrawBox(NewRect(1, 1, 5, 3))

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Error("box corners missing")
	}
	if !strings.Contains(s.Row(1), "─") {
		t.Error("box top edge missing")
	}
}
