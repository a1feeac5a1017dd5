package jsbackend

import (
	"github.com/quartzlang/quartz/internal/config"
	"github.com/quartzlang/quartz/internal/jsast"
)

// Context is the per-unit compile context handed to intrinsic generators.
// It owns the unit's string literal pool and synthesizes calls to the
// runtime support object.
type Context struct {
	stringPool map[string]*jsast.StringLiteral
}

func NewContext() *Context {
	return &Context{stringPool: make(map[string]*jsast.StringLiteral)}
}

// GetStringLiteral returns the pooled literal node for value. Identical
// string values within one unit share a node.
func (c *Context) GetStringLiteral(value string) *jsast.StringLiteral {
	if lit, ok := c.stringPool[value]; ok {
		return lit
	}
	lit := &jsast.StringLiteral{Value: value}
	c.stringPool[value] = lit
	return lit
}

// InvokeRuntimeFunction synthesizes a call to a named runtime support
// function on the $qz runtime object.
func (c *Context) InvokeRuntimeFunction(name string, args ...jsast.Expression) jsast.Expression {
	return &jsast.CallExpression{
		Callee: &jsast.PropertyAccess{
			Object: &jsast.Name{Value: config.RuntimeObjectName},
			Name:   name,
		},
		Arguments: args,
	}
}
