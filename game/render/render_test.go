package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wricardo/hanoi-game/game/engine"
)

func TestRingColor(t *testing.T) {
	tests := []struct {
		size, count int
		want        string
	}{
		{5, 5, "#9400d3"},
		{1, 5, "#ffff00"},
		{1, 7, "#ff0000"},
		{1, 8, "#9400d3"},
		{2, 8, "#ff0000"},
	}

	for _, tt := range tests {
		if got := RingColor(tt.size, tt.count); got != tt.want {
			t.Errorf("RingColor(%d, %d): expected %s, got %s", tt.size, tt.count, tt.want, got)
		}
	}
}

func TestTextRenderer_Render(t *testing.T) {
	view := engine.View{
		Pegs:        [][]int{{3, 2}, {1}, {}},
		ActiveStick: 1,
		RingCount:   3,
		StickCount:  3,
	}

	var buf bytes.Buffer
	if err := NewTextRenderer().Render(&buf, view); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := strings.Join([]string{
		"   |       |       |",
		"  ===      |       |",
		" =====     =       |",
		"------- ------- -------",
		"   1      2^      3",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("Expected:\n%s\ngot:\n%s", want, buf.String())
	}
}

func TestTextRenderer_Won(t *testing.T) {
	view := engine.View{
		Pegs:        [][]int{{}, {}, {2, 1}},
		ActiveStick: engine.NoActiveStick,
		RingCount:   2,
		StickCount:  3,
		Won:         true,
	}

	out := NewTextRenderer().String(view)
	if !strings.Contains(out, "SOLVED") {
		t.Errorf("Expected solved banner, got:\n%s", out)
	}
	if strings.Contains(out, "^") {
		t.Error("Expected no held marker while idle")
	}
}

func TestSummary(t *testing.T) {
	view := engine.View{
		Pegs:        [][]int{{5, 4, 3, 2}, {1}, {}},
		ActiveStick: engine.NoActiveStick,
		RingCount:   5,
		StickCount:  3,
	}

	want := "1:[5 4 3 2] 2:[1] 3:[] held=none rings=5 won=false"
	if got := Summary(view); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	view.ActiveStick = 0
	if got := Summary(view); !strings.Contains(got, "held=1") {
		t.Errorf("Expected held=1, got %q", got)
	}
}

func TestRendererInterface(t *testing.T) {
	var _ Renderer = NewTextRenderer()
}
