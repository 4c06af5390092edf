package view

import "strings"

// Walk visits n and its descendants depth-first. Returning false from fn
// stops the walk.
func (n Node) Walk(fn func(Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first node with the given ID.
func (n Node) Find(id string) (Node, bool) {
	var found Node
	var ok bool
	n.Walk(func(c Node) bool {
		if c.ID == id {
			found, ok = c, true
			return false
		}
		return true
	})
	return found, ok
}

// Actions returns every node that emits a value, in tree order.
func (n Node) Actions() []Node {
	var out []Node
	n.Walk(func(c Node) bool {
		if c.OnPress != nil {
			out = append(out, c)
		}
		return true
	})
	return out
}

// PlainText flattens the visible text of the tree, one node per line.
func (n Node) PlainText() string {
	var b strings.Builder
	n.Walk(func(c Node) bool {
		if c.Text != "" {
			b.WriteString(c.Text)
			b.WriteByte('\n')
		}
		return true
	})
	return b.String()
}

// Map returns a copy of the tree with every OnPress passed through f.
// A parent uses it to lift a child screen's messages into its own events.
func (n Node) Map(f func(any) any) Node {
	if n.OnPress != nil {
		n.OnPress = f(n.OnPress)
	}
	if len(n.Children) > 0 {
		children := make([]Node, len(n.Children))
		for i, c := range n.Children {
			children[i] = c.Map(f)
		}
		n.Children = children
	}
	return n
}
