package dirtree

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// Node is a single directory in the namespace. A node owns its children
// exclusively and keeps no reference to its parent, so every mutation is
// driven from the root with a full list of segments.
type Node struct {
	name     string
	children map[string]*Node
}

func newNode(name string) *Node {
	return &Node{name: name, children: make(map[string]*Node)}
}

func (n *Node) Name() string {
	return n.name
}

// Len reports the number of direct children.
func (n *Node) Len() int {
	return len(n.children)
}

// Child returns the direct child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	return n.children[name]
}

// Children returns the direct children sorted by name.
func (n *Node) Children() []*Node {
	children := slices.Collect(maps.Values(n.children))
	slices.SortFunc(children, func(a, b *Node) int {
		return strings.Compare(a.name, b.name)
	})
	return children
}

// EnsurePath makes sure every segment exists as a chain of children below n,
// creating the missing ones. An empty list of segments is a no-op.
func (n *Node) EnsurePath(segments []string) {
	current := n
	for _, segment := range segments {
		child, ok := current.children[segment]
		if !ok {
			child = newNode(segment)
			current.children[segment] = child
		}
		current = child
	}
}

// Find follows segments from n and returns the node reached, or nil when any
// segment is missing. An empty list of segments resolves to n itself.
func (n *Node) Find(segments []string) *Node {
	current := n
	for _, segment := range segments {
		child, ok := current.children[segment]
		if !ok {
			return nil
		}
		current = child
	}
	return current
}

// RemoveChild detaches the node addressed by segments, together with its
// subtree. It reports false when segments is empty or any segment is missing.
func (n *Node) RemoveChild(segments []string) bool {
	if len(segments) == 0 {
		return false
	}

	parent := n.Find(segments[:len(segments)-1])
	if parent == nil {
		return false
	}

	return parent.detach(segments[len(segments)-1]) != nil
}

// Walk yields n and every descendant in preorder together with its depth
// relative to n. Siblings are visited in ascending order of name. Each call
// starts a fresh traversal.
func (n *Node) Walk() iter.Seq2[*Node, int] {
	type frame struct {
		node  *Node
		depth int
	}

	return func(yield func(*Node, int) bool) {
		stack := []frame{{node: n}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(top.node, top.depth) {
				return
			}

			children := top.node.Children()
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, frame{node: children[i], depth: top.depth + 1})
			}
		}
	}
}

// firstMissing returns the first segment that does not resolve from n.
func (n *Node) firstMissing(segments []string) (string, bool) {
	current := n
	for _, segment := range segments {
		child, ok := current.children[segment]
		if !ok {
			return segment, true
		}
		current = child
	}
	return "", false
}

func (n *Node) attach(child *Node) {
	n.children[child.name] = child
}

func (n *Node) detach(name string) *Node {
	child, ok := n.children[name]
	if !ok {
		return nil
	}

	delete(n.children, name)
	return child
}
