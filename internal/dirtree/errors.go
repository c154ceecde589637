package dirtree

import (
	"fmt"

	"github.com/rwx-research/dirtree/internal/errors"
)

// Kind classifies why a tree operation failed.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindInvalidPath
)

var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidPath = errors.New("invalid path")
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindInvalidPath:
		return "InvalidPath"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindInvalidPath:
		return ErrInvalidPath
	default:
		return nil
	}
}

// PathError is returned by every failing Tree operation. A failed operation
// never leaves the tree partially modified.
type PathError struct {
	Op   string
	Kind Kind
	Path string
	// Dest is only set for moves.
	Dest string
	// Segment is the first segment that could not be resolved, if any.
	Segment string
	Reason  string
}

func (e *PathError) Error() string {
	if e.Op == OpMove {
		return fmt.Sprintf("unable to move %q to %q: %s", e.Path, e.Dest, e.Reason)
	}

	return fmt.Sprintf("unable to %s %q: %s", e.Op, e.Path, e.Reason)
}

// Is lets errors.Is match a PathError against ErrNotFound and ErrInvalidPath.
func (e *PathError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// KindOf extracts the failure kind from an error returned by a Tree.
func KindOf(err error) (Kind, bool) {
	var pathErr *PathError
	if errors.As(err, &pathErr) {
		return pathErr.Kind, true
	}

	return 0, false
}
