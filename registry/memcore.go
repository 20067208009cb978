package registry

import (
	"slices"

	"github.com/kproskurin/hpmcshape/block"
)

// MemCore is an in-memory SimCore: it declares type names and remembers the
// blocks pushed at it. It backs tests and offline shape-file validation;
// the real engine binding satisfies the same interface.
type MemCore struct {
	names  []string
	blocks map[int]block.Block
}

// NewMemCore declares the given type names, indexed in argument order.
func NewMemCore(typeNames ...string) *MemCore {
	return &MemCore{
		names:  slices.Clone(typeNames),
		blocks: make(map[int]block.Block),
	}
}

// TypeNames returns the declared names in index order.
func (c *MemCore) TypeNames() []string { return slices.Clone(c.names) }

// SetParam stores b under the given type index.
func (c *MemCore) SetParam(typeIndex int, b block.Block) {
	c.blocks[typeIndex] = b
}

// AddType declares one more type at the next dense index.
func (c *MemCore) AddType(name string) {
	c.names = append(c.names, name)
}

// Block returns the block stored for a type index, if any.
func (c *MemCore) Block(typeIndex int) (block.Block, bool) {
	b, ok := c.blocks[typeIndex]

	return b, ok
}
