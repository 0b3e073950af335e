package generator

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Classes maps class names to generated source. Iteration follows the order
// in which the classes were completed.
type Classes struct {
	m *orderedmap.OrderedMap[string, string]
}

func newClasses() *Classes {
	return &Classes{m: orderedmap.New[string, string]()}
}

// put stores src under name. An existing name keeps its position.
func (c *Classes) put(name, src string) {
	c.m.Set(name, src)
}

func (c *Classes) Get(name string) (string, bool) {
	return c.m.Get(name)
}

func (c *Classes) Len() int {
	return c.m.Len()
}

func (c *Classes) Names() []string {
	out := make([]string, 0, c.m.Len())
	for pair := c.m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Each calls fn for every class in order until fn returns false.
func (c *Classes) Each(fn func(name, src string) bool) {
	for pair := c.m.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}
