package scene

import "testing"

func TestDemoWindow(t *testing.T) {
	w := DemoWindow()

	if w.Title != "Hello Piston!" {
		t.Errorf("title = %q, want %q", w.Title, "Hello Piston!")
	}
	if w.Width != 640 || w.Height != 480 {
		t.Errorf("size = [%d %d], want [640 480]", w.Width, w.Height)
	}
	if !w.ExitOnEsc {
		t.Error("ExitOnEsc = false, want true")
	}
}

func TestDemo(t *testing.T) {
	s := Demo()

	if s.Background != White {
		t.Errorf("background = %s, want %s", s.Background, White)
	}
	if len(s.Boxes) != 1 {
		t.Fatalf("got %d boxes, want exactly 1", len(s.Boxes))
	}
	box := s.Boxes[0]
	if want := (Rect{X: 50, Y: 50, W: 100, H: 100}); box.Rect != want {
		t.Errorf("box bounds = %s, want %s", box.Rect, want)
	}
	if box.Color != Red {
		t.Errorf("box color = %s, want %s", box.Color, Red)
	}
}
