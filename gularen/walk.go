package gularen

import "errors"

// SkipChildren is a sentinel a VisitFunc can return to skip traversal
// of the current node's children while continuing with its siblings.
// It is not treated as a real error by Walk.
var SkipChildren = errors.New("gularen: skip children")

// VisitFunc is called once per node in pre-order. Returning nil
// continues traversal, SkipChildren skips the current node's children,
// and any other error aborts the walk and is returned by Walk.
type VisitFunc func(n *Node) error

// Walk traverses the tree rooted at n in pre-order depth-first order.
// Walk safely handles a nil root by returning nil without calling fn.
func Walk(n *Node, fn VisitFunc) error {
	if n == nil {
		return nil
	}

	if err := fn(n); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}

		return err
	}

	for _, c := range n.Children {
		if err := Walk(c, fn); err != nil {
			return err
		}
	}

	return nil
}

// EnterFunc and LeaveFunc let a caller run logic both before and after a
// node's children are visited — useful for indentation-tracking
// printers such as the debug-dump backend.
type EnterFunc func(n *Node) error
type LeaveFunc func(n *Node) error

// WalkEnterLeave traverses the tree calling enter before descending into
// a node's children and leave after. If enter returns SkipChildren, the
// children are skipped but leave is still invoked. Any other error from
// either callback aborts the walk immediately.
func WalkEnterLeave(n *Node, enter EnterFunc, leave LeaveFunc) error {
	if n == nil {
		return nil
	}

	skip := false
	if err := enter(n); err != nil {
		if errors.Is(err, SkipChildren) {
			skip = true
		} else {
			return err
		}
	}

	if !skip {
		for _, c := range n.Children {
			if err := WalkEnterLeave(c, enter, leave); err != nil {
				return err
			}
		}
	}

	return leave(n)
}

// Find returns the first descendant (including n itself) for which
// match returns true, in pre-order, or nil if none matches.
func Find(n *Node, match func(*Node) bool) *Node {
	var found *Node
	_ = Walk(n, func(c *Node) error {
		if found != nil {
			return SkipChildren
		}
		if match(c) {
			found = c

			return SkipChildren
		}

		return nil
	})

	return found
}

// Collect returns every descendant (including n itself) for which match
// returns true, in pre-order.
func Collect(n *Node, match func(*Node) bool) []*Node {
	var out []*Node
	_ = Walk(n, func(c *Node) error {
		if match(c) {
			out = append(out, c)
		}

		return nil
	})

	return out
}
