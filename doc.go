// Package carton renders trees of text nodes into fixed-width, multi-line
// terminal output.
//
// It is a small box-model layout engine: Text leaves wrap their content to
// the available width (capped at MaxColumnWidth for readability), and Box
// containers compose children vertically or horizontally with CSS-style
// padding/border shorthands and per-axis span constraints. Rendering is a
// pure function of the tree and a Context, so a tree can be rendered
// repeatedly, or concurrently, with different width budgets.
//
//	out := carton.NewRoot(
//		carton.VBox(
//			carton.NewText("carton"),
//			carton.HBox(
//				carton.VBox(carton.NewText("left")).Border(carton.BorderSingle),
//				carton.VBox(carton.NewText("right")).Border(carton.BorderSingle),
//			).Gap(1),
//		).Pad(carton.PadN(1)),
//		carton.WithWidth(80),
//	).Render()
//
// Trees can also be described declaratively in TOML; see Document.
package carton
