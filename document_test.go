package carton

import "testing"

func TestDecodeDocument(t *testing.T) {
	t.Run("MatchesHandBuiltTree", func(t *testing.T) {
		doc := `
[node]
kind = "box"
border = "single"
title = "Stats"
gap = 1

  [[node.children]]
  kind = "text"
  content = "tasks: 100"

  [[node.children]]
  kind = "text"
  content = "memory: 4GB"
`
		node, err := DecodeDocument(doc)
		if err != nil {
			t.Fatal(err)
		}
		want := VBox(NewText("tasks: 100"), NewText("memory: 4GB")).
			Border(BorderSingle).Title("Stats").Gap(1)

		got := NewRoot(node, WithWidth(40)).Render()
		expected := NewRoot(want, WithWidth(40)).Render()
		if got != expected {
			t.Errorf("document render mismatch\ngot:\n%s\nwant:\n%s", got, expected)
		}
	})

	t.Run("Orientation", func(t *testing.T) {
		doc := `
[node]
orientation = "horizontal"
gap = 1

  [[node.children]]
  kind = "text"
  content = "a"

  [[node.children]]
  kind = "text"
  content = "b"
`
		node, err := DecodeDocument(doc)
		if err != nil {
			t.Fatal(err)
		}
		checkValue(t, NewRoot(node, WithWidth(40)).Render(), "a b")
	})

	t.Run("PaddingShorthand", func(t *testing.T) {
		doc := `
[node]
padding = [1, 2]

  [[node.children]]
  kind = "text"
  content = "hi"
`
		node, err := DecodeDocument(doc)
		if err != nil {
			t.Fatal(err)
		}
		checkValue(t, NewRoot(node, WithWidth(40)).Render(),
			"      ",
			"  hi  ",
			"      ",
		)
	})

	t.Run("WidthSpan", func(t *testing.T) {
		doc := `
[node]
max-width = 5

  [[node.children]]
  kind = "text"
  content = "hello world"
`
		node, err := DecodeDocument(doc)
		if err != nil {
			t.Fatal(err)
		}
		checkValue(t, NewRoot(node, WithWidth(40)).Render(), "hello", "world")
	})

	t.Run("Errors", func(t *testing.T) {
		bad := []struct {
			name string
			doc  string
		}{
			{"UnknownKind", "[node]\nkind = \"blob\""},
			{"UnknownBorder", "[node]\nborder = \"wavy\""},
			{"UnknownOrientation", "[node]\norientation = \"diagonal\""},
			{"TextWithChildren", "[node]\nkind = \"text\"\n[[node.children]]\nkind = \"text\""},
			{"PaddingArity", "[node]\npadding = [1, 2, 3, 4, 5]"},
			{"NotToml", "not = [valid"},
		}
		for _, tt := range bad {
			t.Run(tt.name, func(t *testing.T) {
				if _, err := DecodeDocument(tt.doc); err == nil {
					t.Errorf("expected error for %s", tt.name)
				}
			})
		}
	})
}
