package carton

import (
	"strings"
	"testing"
)

func TestTextRender(t *testing.T) {
	t.Run("ReadabilityCapAlwaysApplies", func(t *testing.T) {
		// 100 columns of content, 120 offered: the 70-column cap wins.
		res := NewText(strings.Repeat("_", 100)).Render(Context{MaxWidth: 120})
		if res.Shape.Width != MaxColumnWidth {
			t.Errorf("width = %d, want %d", res.Shape.Width, MaxColumnWidth)
		}
		for _, line := range splitLines(res.Value) {
			if w := VisualWidth(line); w > MaxColumnWidth {
				t.Errorf("line %q exceeds cap: %d", line, w)
			}
		}
	})

	t.Run("NarrowerContextConstrainsFurther", func(t *testing.T) {
		res := NewText(strings.Repeat("_", 100)).Render(Context{MaxWidth: 40})
		if res.Shape.Width != 40 {
			t.Errorf("width = %d, want 40", res.Shape.Width)
		}
	})

	t.Run("UnconstrainedContextStillCapped", func(t *testing.T) {
		res := NewText(strings.Repeat("_", 100)).Render(Context{})
		if res.Shape.Width != MaxColumnWidth {
			t.Errorf("width = %d, want %d", res.Shape.Width, MaxColumnWidth)
		}
	})

	t.Run("NarrowTextPassesThrough", func(t *testing.T) {
		res := NewText("hi there").Render(Context{MaxWidth: 40})
		if res.Value != "hi there" {
			t.Errorf("value = %q, want unmodified input", res.Value)
		}
		if res.Shape.Width != 8 || res.Shape.Height != 1 {
			t.Errorf("shape = %+v, want 8x1", res.Shape)
		}
	})

	t.Run("EmptyString", func(t *testing.T) {
		res := NewText("").Render(Context{MaxWidth: 40})
		if res.Shape.Width != 0 || res.Shape.Height != 1 {
			t.Errorf("shape = %+v, want 0x1", res.Shape)
		}
		if res.Value != "" {
			t.Errorf("value = %q, want empty", res.Value)
		}
	})

	t.Run("NoDesiredWidth", func(t *testing.T) {
		res := NewText("x").Render(Context{MaxWidth: 40})
		if res.Shape.Desired != -1 {
			t.Errorf("desired = %d, want -1", res.Shape.Desired)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		node := NewText(strings.Repeat("word ", 50))
		ctx := Context{MaxWidth: 33}
		a := node.Render(ctx)
		b := node.Render(ctx)
		if a != b {
			t.Error("re-rendering with an identical context changed the result")
		}
	})

	t.Run("ShapeNonNegative", func(t *testing.T) {
		for _, content := range []string{"", "a", "日本語", strings.Repeat("x", 500)} {
			for _, max := range []int{0, 1, 7, 70, 500} {
				res := NewText(content).Render(Context{MaxWidth: max})
				if res.Shape.Width < 0 || res.Shape.Height < 0 {
					t.Errorf("negative shape %+v for %q @ %d", res.Shape, content, max)
				}
			}
		}
	})
}

func TestNewTextf(t *testing.T) {
	res := NewTextf("%d items", 3).Render(Context{})
	if res.Value != "3 items" {
		t.Errorf("value = %q, want %q", res.Value, "3 items")
	}
}
