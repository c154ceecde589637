package dirtree

import (
	"fmt"
	"strings"
)

const Separator = "/"

const (
	OpCreate = "create"
	OpMove   = "move"
	OpDelete = "delete"
)

// Entry is one line of a listing. Depth 0 is a direct child of the root.
type Entry struct {
	Name  string `json:"name" yaml:"name"`
	Path  string `json:"path" yaml:"path"`
	Depth int    `json:"depth" yaml:"depth"`
}

// Tree is a namespace of directories addressed by slash-delimited paths.
// The empty path is the root. A Tree is not safe for concurrent use.
type Tree struct {
	root *Node
}

func New() *Tree {
	return &Tree{root: newNode("")}
}

func (t *Tree) Root() *Node {
	return t.root
}

// Create makes the directory at path along with any missing parents.
// Creating an existing path succeeds without changing anything.
func (t *Tree) Create(path string) error {
	segments, reason := split(path)
	if reason != "" {
		return &PathError{Op: OpCreate, Kind: KindInvalidPath, Path: path, Reason: reason}
	}

	t.root.EnsurePath(segments)
	return nil
}

// Move detaches the directory at src and attaches it, under the same name,
// to the existing directory at dest.
func (t *Tree) Move(src, dest string) error {
	invalid := func(segment, reason string) error {
		return &PathError{Op: OpMove, Kind: KindInvalidPath, Path: src, Dest: dest, Segment: segment, Reason: reason}
	}

	srcSegments, reason := split(src)
	if reason != "" {
		return invalid("", reason)
	}
	if len(srcSegments) == 0 {
		return invalid("", "the root cannot be moved")
	}

	destSegments, reason := split(dest)
	if reason != "" {
		return invalid("", reason)
	}

	name := srcSegments[len(srcSegments)-1]
	parent := t.root.Find(srcSegments[:len(srcSegments)-1])
	if parent == nil || parent.Child(name) == nil {
		missing, _ := t.root.firstMissing(srcSegments)
		return invalid(missing, fmt.Sprintf("%s does not exist", missing))
	}

	destDir := t.root.Find(destSegments)
	if destDir == nil {
		missing, _ := t.root.firstMissing(destSegments)
		return invalid(missing, fmt.Sprintf("%s does not exist", missing))
	}

	if destDir == parent {
		return nil
	}
	if hasPrefix(destSegments, srcSegments) {
		return invalid("", "a directory cannot be moved into itself")
	}
	if destDir.Child(name) != nil {
		return invalid("", fmt.Sprintf("%s already exists", join(append(destSegments, name))))
	}

	destDir.attach(parent.detach(name))
	return nil
}

// Delete removes the directory at path and everything below it.
func (t *Tree) Delete(path string) error {
	segments, reason := split(path)
	if reason != "" {
		return &PathError{Op: OpDelete, Kind: KindInvalidPath, Path: path, Reason: reason}
	}
	if len(segments) == 0 {
		return &PathError{Op: OpDelete, Kind: KindInvalidPath, Path: path, Reason: "the root cannot be deleted"}
	}

	if !t.root.RemoveChild(segments) {
		missing, _ := t.root.firstMissing(segments)
		return &PathError{
			Op:      OpDelete,
			Kind:    KindNotFound,
			Path:    path,
			Segment: missing,
			Reason:  fmt.Sprintf("%s does not exist", missing),
		}
	}

	return nil
}

// List returns every directory in preorder, siblings sorted by name. The
// unnamed root itself is not listed.
func (t *Tree) List() []Entry {
	entries := make([]Entry, 0)
	ancestors := make([]string, 0)

	for node, depth := range t.root.Walk() {
		if depth == 0 {
			continue
		}

		ancestors = append(ancestors[:depth-1], node.name)
		entries = append(entries, Entry{
			Name:  node.name,
			Path:  join(ancestors),
			Depth: depth - 1,
		})
	}

	return entries
}

// Paths returns the path of every directory in listing order.
func (t *Tree) Paths() []string {
	entries := t.List()
	paths := make([]string, len(entries))
	for i, entry := range entries {
		paths[i] = entry.Path
	}
	return paths
}

// Exists reports whether path names a directory in the tree.
func (t *Tree) Exists(path string) bool {
	segments, reason := split(path)
	if reason != "" {
		return false
	}

	return t.root.Find(segments) != nil
}

// split breaks path into segments. A non-empty reason means the path is
// malformed.
func split(path string) ([]string, string) {
	if path == "" {
		return nil, ""
	}

	segments := strings.Split(path, Separator)
	for _, segment := range segments {
		if segment == "" {
			return nil, "path contains an empty segment"
		}
	}

	return segments, ""
}

func join(segments []string) string {
	return strings.Join(segments, Separator)
}

func hasPrefix(segments, prefix []string) bool {
	if len(prefix) > len(segments) {
		return false
	}

	for i := range prefix {
		if segments[i] != prefix[i] {
			return false
		}
	}

	return true
}
