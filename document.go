package carton

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// A Document is a layout tree described declaratively in TOML, so tools can
// render boxes without constructing nodes in code:
//
//	[node]
//	kind = "box"
//	orientation = "horizontal"
//	border = "single"
//	title = "Stats"
//	gap = 1
//
//	  [[node.children]]
//	  kind = "text"
//	  content = "tasks: 100"
//
//	  [[node.children]]
//	  kind = "text"
//	  content = "memory: 4GB"
type Document struct {
	Node NodeSpec `toml:"node"`
}

// NodeSpec describes one node of a document tree.
type NodeSpec struct {
	Kind        string     `toml:"kind"`    // "text" or "box"
	Content     string     `toml:"content"` // text nodes only
	Orientation string     `toml:"orientation"`
	Padding     []int      `toml:"padding"` // 1-4 value shorthand
	PadFill     string     `toml:"pad-fill"`
	Border      string     `toml:"border"` // "", "single", "rounded", "double", "thick"
	Title       string     `toml:"title"`
	Gap         int        `toml:"gap"`
	MinWidth    int        `toml:"min-width"`
	MaxWidth    int        `toml:"max-width"`
	Children    []NodeSpec `toml:"children"`
}

// DecodeDocument parses a TOML document into a renderable tree. Malformed
// documents fail here, at build time, never during render.
func DecodeDocument(data string) (Node, error) {
	var doc Document
	if _, err := toml.Decode(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding layout document: %w", err)
	}
	return doc.Node.build()
}

// LoadDocument reads and parses a TOML document from a file.
func LoadDocument(path string) (Node, error) {
	var doc Document
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("loading layout document: %w", err)
	}
	return doc.Node.build()
}

func (s NodeSpec) build() (Node, error) {
	switch s.Kind {
	case "text":
		if len(s.Children) > 0 {
			return nil, fmt.Errorf("text node cannot have children")
		}
		return NewText(s.Content), nil
	case "box", "":
	default:
		return nil, fmt.Errorf("unknown node kind %q", s.Kind)
	}

	b := VBox()
	switch strings.ToLower(s.Orientation) {
	case "", "vertical":
	case "horizontal":
		b.Orient(Horizontal)
	default:
		return nil, fmt.Errorf("unknown orientation %q", s.Orientation)
	}

	for i, child := range s.Children {
		node, err := child.build()
		if err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
		b.Add(node)
	}

	if len(s.Padding) > 0 {
		if len(s.Padding) > 4 {
			return nil, fmt.Errorf("padding takes 1 to 4 values, got %d", len(s.Padding))
		}
		pads := make([]Pad, len(s.Padding))
		for i, n := range s.Padding {
			pads[i] = PadN(n)
		}
		b.Pad(pads...)
	} else if s.PadFill != "" {
		b.Pad(PadFill(s.PadFill))
	}

	if s.Border != "" {
		style, err := borderByName(s.Border)
		if err != nil {
			return nil, err
		}
		b.Border(style)
	}
	if s.Title != "" {
		b.Title(s.Title)
	}
	if s.Gap > 0 {
		b.Gap(s.Gap)
	}
	if s.MinWidth > 0 || s.MaxWidth > 0 {
		b.WidthSpan(s.MinWidth, s.MaxWidth)
	}
	return b, nil
}

func borderByName(name string) (BorderStyle, error) {
	switch strings.ToLower(name) {
	case "single":
		return BorderSingle, nil
	case "rounded":
		return BorderRounded, nil
	case "double":
		return BorderDouble, nil
	case "thick":
		return BorderThick, nil
	default:
		return BorderStyle{}, fmt.Errorf("unknown border style %q", name)
	}
}
