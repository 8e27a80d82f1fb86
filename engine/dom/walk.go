package dom

import "github.com/emirpasic/gods/stacks/arraystack"

// Iterator traverses a tree in pre-order: a parent is visited before
// its children, children from first to last.
type Iterator struct {
	stack *arraystack.Stack
}

// NewIterator creates an iterator starting at root.
func NewIterator(root *Node) *Iterator {
	it := &Iterator{stack: arraystack.New()}
	if root != nil {
		it.stack.Push(root)
	}
	return it
}

// Next returns the next node, or nil if the traversal is exhausted.
func (it *Iterator) Next() *Node {
	top, ok := it.stack.Pop()
	if !ok {
		return nil
	}
	n := top.(*Node)
	for i := len(n.children) - 1; i >= 0; i-- {
		it.stack.Push(n.children[i])
	}
	return n
}

// Visitor receives enter and leave events from Walk.
type Visitor interface {
	Enter(n *Node) error
	Leave(n *Node) error
}

// Walk traverses a tree depth-first and calls v.Enter for a node before
// visiting its children and v.Leave afterwards. The first error returned
// by the visitor stops the walk.
func Walk(root *Node, v Visitor) error {
	if root == nil {
		return nil
	}
	if err := v.Enter(root); err != nil {
		return err
	}
	for _, ch := range root.children {
		if err := Walk(ch, v); err != nil {
			return err
		}
	}
	return v.Leave(root)
}
