package jsonv

import (
	"strings"

	j "github.com/goccy/go-json"
)

// WriteOpt configures WriteString.
type WriteOpt struct {
	// Indent selects the pretty form with n-space indentation when > 0.
	// Zero writes the compact form.
	Indent int
}

// WriteString serializes v. Object members appear in insertion order, so the
// output is deterministic for a given tree.
func WriteString(v Value, opt WriteOpt) string {
	var b strings.Builder
	write(&b, v, opt, 0)
	return b.String()
}

// Compact is WriteString without indentation.
func Compact(v Value) string { return WriteString(v, WriteOpt{}) }

func write(b *strings.Builder, v Value, opt WriteOpt, depth int) {
	switch val := v.(type) {
	case nil, Null:
		b.WriteString("null")
	case Bool:
		if val {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case *Number:
		b.WriteString(val.String())
	case String:
		writeQuoted(b, string(val))
	case Array:
		if len(val) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				b.WriteByte(',')
			}
			newline(b, opt, depth+1)
			write(b, item, opt, depth+1)
		}
		newline(b, opt, depth)
		b.WriteByte(']')
	case *Object:
		if val.Len() == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteByte('{')
		first := true
		for key, member := range val.All() {
			if !first {
				b.WriteByte(',')
			}
			first = false
			newline(b, opt, depth+1)
			writeQuoted(b, key)
			b.WriteByte(':')
			if opt.Indent > 0 {
				b.WriteByte(' ')
			}
			write(b, member, opt, depth+1)
		}
		newline(b, opt, depth)
		b.WriteByte('}')
	}
}

func newline(b *strings.Builder, opt WriteOpt, depth int) {
	if opt.Indent == 0 {
		return
	}
	b.WriteByte('\n')
	for range depth * opt.Indent {
		b.WriteByte(' ')
	}
}

func writeQuoted(b *strings.Builder, s string) {
	// goccy applies JSON string escaping; HTML escaping stays off so the
	// output matches the input text for <, > and &.
	enc, err := j.MarshalWithOption(s, j.DisableHTMLEscape())
	if err != nil {
		// cannot happen for a string input
		b.WriteString(`""`)
		return
	}
	b.Write(enc)
}
