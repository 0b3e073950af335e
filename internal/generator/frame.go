package generator

import "strings"

// frame holds the in-progress text of one class. Attributes and methods are
// buffered apart so every field precedes every method in the output no matter
// the order in which members are generated.
type frame struct {
	name       string
	attributes strings.Builder
	methods    strings.Builder
	appendix   strings.Builder
}

// source assembles the finished class text.
func (f *frame) source() string {
	var b strings.Builder
	b.WriteString("class " + f.name + " {\n")
	b.WriteString(f.attributes.String())
	b.WriteString("\n")
	b.WriteString(f.methods.String())
	b.WriteString("}")
	if strings.TrimSpace(f.appendix.String()) != "" {
		b.WriteString("\n")
		b.WriteString(f.appendix.String())
	}
	return b.String()
}

type frameStack []*frame

func (s *frameStack) push(f *frame) {
	*s = append(*s, f)
}

func (s *frameStack) pop() *frame {
	if len(*s) == 0 {
		return nil
	}
	f := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return f
}

func (s frameStack) top() *frame {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}
