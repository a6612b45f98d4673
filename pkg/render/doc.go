// Package render draws a [tree.Node] as an aligned, multi-line text diagram.
//
// # Overview
//
// Every node occupies exactly one line: the configured prefix, one connector
// column per ancestor level, then the node's label. Rendering is a pre-order
// walk that keeps, for each ancestor level, the number of siblings at that
// level not yet emitted. Each column is drawn from that count:
//
//   - last level, one remaining: angle (the node is its parent's last child)
//   - last level, more remaining: tee (later siblings follow)
//   - outer level, one remaining: blank (that branch already ended)
//   - outer level, more remaining: bar (that branch continues below)
//
// All four column kinds have the same width per level, so labels at the same
// depth line up no matter which glyphs appear to their left. See
// [format.Formatting.LabelColumn].
//
// # Usage
//
//	out, err := render.Render(root, format.DirTree(format.Box()))
//
//	// Stream to any writer
//	err := render.RenderTo(os.Stdout, root, format.Default())
//
// # Errors
//
// Invalid formatting is reported before anything is written. After that the
// only failure is the writer itself: the first write error stops the walk and
// is returned wrapped with [errors.ErrCodeWrite]. Lines already written stay
// written.
//
// # Concurrency
//
// Rendering reads the tree and writes to the sink from the calling goroutine
// only. The caller must not mutate the tree during a render.
//
// [errors.ErrCodeWrite]: github.com/matzehuels/texttree/pkg/errors
package render
