package attrs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// MarshalJSON projects the bag as a JSON object whose keys are the
// normalized keys in insertion order.  Nested bags project through the same
// contract, so the walk is depth-first and structural.  An empty bag renders
// as {}, never as a list.
func (b *Bag) MarshalJSON() ([]byte, error) {
	if b == nil || len(b.data) == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range b.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(encodedKey)
		buf.WriteByte(':')
		encodedValue, err := json.Marshal(b.data[key])
		if err != nil {
			return nil, fmt.Errorf("marshal attribute %q: %w", key, err)
		}
		buf.Write(encodedValue)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the bag's content with the supplied JSON object.
// Document key order is preserved and every key passes through the
// normalization gate; nested objects become nested bags built through the
// construction seam.  Numbers decode as json.Number so the projection
// round-trips without float drift.
func (b *Bag) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode attributes: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("decode attributes: expected object, got %v", tok)
	}
	b.Clear()
	if err := b.decodeObject(dec); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("decode attributes: trailing content")
	}
	return nil
}

// decodeObject consumes object members up to and including the closing
// brace; the opening brace has already been consumed.
func (b *Bag) decodeObject(dec *json.Decoder) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode attributes: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("decode attributes: non-string key %v", tok)
		}
		value, err := b.decodeValue(dec)
		if err != nil {
			return err
		}
		b.Set(key, value)
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return fmt.Errorf("decode attributes: %w", err)
	}
	return nil
}

func (b *Bag) decodeValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode attributes: %w", err)
	}
	switch actual := tok.(type) {
	case json.Delim:
		switch actual {
		case '{':
			child := b.newNested()
			if err := child.decodeObject(dec); err != nil {
				return nil, err
			}
			return child, nil
		case '[':
			var items []interface{}
			for dec.More() {
				item, err := b.decodeValue(dec)
				if err != nil {
					return nil, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil { // closing ']'
				return nil, fmt.Errorf("decode attributes: %w", err)
			}
			return items, nil
		default:
			return nil, fmt.Errorf("decode attributes: unexpected delimiter %v", actual)
		}
	default:
		return tok, nil // string, bool, json.Number or nil
	}
}

// String renders the JSON projection as text; an empty or nil bag renders as
// "{}".
func (b *Bag) String() string {
	if b == nil {
		return "{}"
	}
	data, err := b.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(data)
}
