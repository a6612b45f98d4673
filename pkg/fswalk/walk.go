package fswalk

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/texttree/pkg/errors"
	"github.com/matzehuels/texttree/pkg/tree"
)

// Options configures a walk.
type Options struct {
	// MaxDepth limits how many levels below the root are listed.
	// Zero means unlimited.
	MaxDepth int

	// ShowHidden includes entries whose names start with a dot.
	ShowHidden bool

	// FollowSymlinks descends into symbolic links that point to directories.
	FollowSymlinks bool

	// Markers overrides the label markers. The zero value uses [EmojiMarkers].
	Markers *Markers

	// Home is the directory labelled with the home marker.
	// Empty means the current user's home directory.
	Home string

	// Logger receives a debug record for every unreadable directory.
	Logger *log.Logger
}

// Node is a walked filesystem tree.
type Node = tree.Node[Entry]

type walker struct {
	opts    Options
	markers Markers
	home    string
	visited map[string]bool
}

// Walk lists root recursively and returns the resulting tree.
//
// Walk fails only if root itself does not exist or ctx is cancelled.
func Walk(ctx context.Context, root string, opts Options) (*Node, error) {
	info, err := os.Lstat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "walk %s", root)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "walk %s", root)
	}

	w := &walker{opts: opts, markers: EmojiMarkers, visited: make(map[string]bool)}
	if opts.Markers != nil {
		w.markers = *opts.Markers
	}
	w.home = opts.Home
	if w.home == "" {
		w.home, _ = os.UserHomeDir()
	}
	if w.home != "" {
		if resolved, err := filepath.EvalSymlinks(w.home); err == nil {
			w.home = resolved
		}
	}

	name := filepath.Base(filepath.Clean(root))
	if name == "." || name == string(filepath.Separator) {
		name = root
	}
	// The root is always descended, even when it is a link.
	if info.Mode()&os.ModeSymlink != 0 {
		if target, err := os.Stat(root); err == nil {
			info = target
		}
	}
	return w.visit(ctx, root, name, info, 0)
}

func (w *walker) visit(ctx context.Context, path, name string, info os.FileInfo, depth int) (*Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entry := Entry{Name: name, Path: path, markers: w.markers}
	descend := false
	switch {
	case info.Mode()&os.ModeSymlink != 0:
		target, err := os.Stat(path)
		switch {
		case err != nil:
			entry.Kind = KindBroken
		case target.IsDir() && w.opts.FollowSymlinks:
			entry.Kind = w.dirKind(path)
			descend = true
		default:
			entry.Kind = KindSymlink
		}
	case info.IsDir():
		entry.Kind = w.dirKind(path)
		descend = true
	default:
		entry.Kind = KindFile
	}

	node := tree.New(entry)
	if !descend || (w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth) {
		return node, nil
	}

	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		if w.visited[resolved] {
			return node, nil
		}
		w.visited[resolved] = true
		defer delete(w.visited, resolved)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		if w.opts.Logger != nil {
			w.opts.Logger.Debug("unreadable directory", "path", path, "err", err)
		}
		entry.Err = err
		return tree.New(entry), nil
	}

	for _, de := range entries {
		if !w.opts.ShowHidden && strings.HasPrefix(de.Name(), ".") {
			continue
		}
		childPath := filepath.Join(path, de.Name())
		childInfo, err := os.Lstat(childPath)
		if err != nil {
			// Removed between ReadDir and Lstat.
			node.PushNode(tree.New(Entry{Name: de.Name(), Path: childPath, Kind: KindBroken, markers: w.markers}))
			continue
		}
		child, err := w.visit(ctx, childPath, de.Name(), childInfo, depth+1)
		if err != nil {
			return nil, err
		}
		node.PushNode(child)
	}
	return node, nil
}

func (w *walker) dirKind(path string) Kind {
	if w.home == "" {
		return KindDir
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil && resolved == w.home {
		return KindHome
	}
	return KindDir
}

// Summary counts the entries of a walked tree, excluding the root.
type Summary struct {
	Dirs       int
	Files      int
	Symlinks   int
	Unreadable int
}

// Summarize counts entries by kind.
func Summarize(root *Node) Summary {
	var s Summary
	if root == nil {
		return s
	}
	root.Walk(func(n *Node, depth int) bool {
		e := n.Data()
		if e.Err != nil {
			s.Unreadable++
		}
		if depth == 0 {
			return true
		}
		switch {
		case e.IsDir():
			s.Dirs++
		case e.Kind == KindSymlink || e.Kind == KindBroken:
			s.Symlinks++
		default:
			s.Files++
		}
		return true
	})
	return s
}
