package tag

import "iter"

// Compound holds uniquely named child nodes in insertion order.
//
// The zero value is an empty compound. A nil *Compound behaves as empty for
// reads.
type Compound struct {
	nodes []*Node
	index map[string]int
}

func (c *Compound) Len() int {
	if c == nil {
		return 0
	}
	return len(c.nodes)
}

// Index returns the position of the child called name, or -1. A hit whose
// node was renamed behind the compound's back rebuilds the index.
func (c *Compound) Index(name string) int {
	if c == nil {
		return -1
	}
	c.buildIndex()
	i, ok := c.index[name]
	if ok && c.nodes[i].Name != name {
		c.index = nil
		c.buildIndex()
		i, ok = c.index[name]
	}
	if !ok {
		return -1
	}
	return i
}

func (c *Compound) Get(name string) (*Node, bool) {
	i := c.Index(name)
	if i < 0 {
		return nil, false
	}
	return c.nodes[i], true
}

// At returns the i'th child in insertion order.
func (c *Compound) At(i int) *Node {
	return c.nodes[i]
}

// All iterates the children in insertion order.
func (c *Compound) All() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		if c == nil {
			return
		}
		for _, n := range c.nodes {
			if !yield(n.Name, n) {
				return
			}
		}
	}
}

func (c *Compound) Names() []string {
	if c == nil {
		return nil
	}
	res := make([]string, len(c.nodes))
	for i, n := range c.nodes {
		res[i] = n.Name
	}
	return res
}

// Add appends n, failing if a child with the same name exists. The
// compound takes ownership of n.
func (c *Compound) Add(n *Node) error {
	if n.Type == EndType {
		return invalidf("insert", "End is not a value")
	}
	if err := CheckName(n.Name); err != nil {
		return err
	}
	if c.Index(n.Name) >= 0 {
		return &ValidationError{Op: "insert", Path: n.Name, Msg: "name already exists"}
	}
	c.buildIndex()
	c.index[n.Name] = len(c.nodes)
	c.nodes = append(c.nodes, n)
	return nil
}

// Remove detaches and returns the child called name.
func (c *Compound) Remove(name string) (*Node, bool) {
	i := c.Index(name)
	if i < 0 {
		return nil, false
	}
	n := c.nodes[i]
	copy(c.nodes[i:], c.nodes[i+1:])
	c.nodes[len(c.nodes)-1] = nil
	c.nodes = c.nodes[:len(c.nodes)-1]
	delete(c.index, name)
	for j := i; j < len(c.nodes); j++ {
		c.index[c.nodes[j].Name] = j
	}
	return n, true
}

// Rename changes the name of a child in place, keeping its position.
func (c *Compound) Rename(oldName, newName string) error {
	i := c.Index(oldName)
	if i < 0 {
		return &ValidationError{Op: "rename", Path: oldName, Msg: "no such child"}
	}
	if oldName == newName {
		return nil
	}
	if err := CheckName(newName); err != nil {
		return err
	}
	if c.Index(newName) >= 0 {
		return &ValidationError{Op: "rename", Path: newName, Msg: "name already exists"}
	}
	c.nodes[i].Name = newName
	delete(c.index, oldName)
	c.index[newName] = i
	return nil
}

func (c *Compound) Clone() *Compound {
	if c == nil {
		return &Compound{}
	}
	res := &Compound{nodes: make([]*Node, len(c.nodes))}
	for i, n := range c.nodes {
		res.nodes[i] = n.Clone()
	}
	return res
}

func (c *Compound) buildIndex() {
	if c.index != nil && len(c.index) == len(c.nodes) {
		return
	}
	c.index = make(map[string]int, len(c.nodes))
	for i, n := range c.nodes {
		c.index[n.Name] = i
	}
}
