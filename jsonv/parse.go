package jsonv

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	j "github.com/goccy/go-json"
)

// Decoder reads JSON values from a stream, one tree per Decode call.
type Decoder struct {
	dec *j.Decoder
}

// NewDecoder wraps r. Numbers are kept as literals, never as float64.
func NewDecoder(r io.Reader) *Decoder {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &Decoder{dec: dec}
}

// Decode reads the next JSON value. It returns io.EOF once the stream is
// exhausted.
func (d *Decoder) Decode() (Value, error) {
	tok, err := d.dec.Token()
	if err != nil {
		return nil, err
	}
	return d.build(tok)
}

func (d *Decoder) build(tok j.Token) (Value, error) {
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			return d.buildObject()
		case '[':
			return d.buildArray()
		}
		return nil, fmt.Errorf("jsonv: unexpected delimiter %q", v.String())
	case string:
		return String(v), nil
	case bool:
		return Bool(v), nil
	case j.Number:
		return Num(string(v)), nil
	case float64:
		return Num(strconv.FormatFloat(v, 'g', -1, 64)), nil
	case nil:
		return Null{}, nil
	default:
		return nil, fmt.Errorf("jsonv: unexpected token %v", tok)
	}
}

func (d *Decoder) buildObject() (Value, error) {
	obj := NewObject()
	for d.dec.More() {
		keyTok, err := d.dec.Token()
		if err != nil {
			return nil, eofIsUnexpected(err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("jsonv: object key is not a string: %v", keyTok)
		}
		valTok, err := d.dec.Token()
		if err != nil {
			return nil, eofIsUnexpected(err)
		}
		val, err := d.build(valTok)
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
	}
	// consume the closing brace
	if _, err := d.dec.Token(); err != nil {
		return nil, eofIsUnexpected(err)
	}
	return obj, nil
}

func (d *Decoder) buildArray() (Value, error) {
	var arr Array
	for d.dec.More() {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, eofIsUnexpected(err)
		}
		item, err := d.build(tok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, item)
	}
	if _, err := d.dec.Token(); err != nil {
		return nil, eofIsUnexpected(err)
	}
	if arr == nil {
		arr = Array{}
	}
	return arr, nil
}

func eofIsUnexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// Parse parses exactly one JSON value from b. Trailing input is an error.
func Parse(b []byte) (Value, error) {
	d := NewDecoder(bytes.NewReader(b))
	v, err := d.Decode()
	if err != nil {
		return nil, eofIsUnexpected(err)
	}
	if _, err := d.dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("jsonv: trailing data after top-level value")
	}
	return v, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (Value, error) { return Parse([]byte(s)) }
