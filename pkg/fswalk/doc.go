// Package fswalk builds label trees from the filesystem.
//
// Each directory entry becomes one node whose label is a kind marker
// followed by the entry name, so rendering the result produces a listing
// in the style of the tree(1) utility:
//
//	📁 project
//	+-- 📁 cmd
//	|  +-- 📄 main.go
//	+-- 📄 go.mod
//	+-- 🔗 latest
//
// Entries are visited in name order. Hidden entries (names starting with
// a dot) are skipped unless [Options.ShowHidden] is set. Symbolic links
// are listed as leaves; with [Options.FollowSymlinks] links to directories
// are descended, guarding against cycles.
//
// A directory that cannot be read does not fail the walk. It becomes a
// leaf with [Entry.Err] set, and its label carries an error marker.
package fswalk
