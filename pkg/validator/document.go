package validator

import (
	"bytes"
	"encoding/json"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Document is the wire form of an Errors tree:
//
//	{"errors": [...]}                           for NewTypeErrors
//	{"errors": [...], "items": {"<i>": ...}}    for ArrayErrors
//	{"errors": [...], "properties": {"k": ...}} for ObjectErrors
//
// Item and property maps keep insertion order and only hold failed entries.
type Document struct {
	Errors     []string                                  `json:"errors"`
	Items      *orderedmap.OrderedMap[string, *Document] `json:"items,omitempty"`
	Properties *orderedmap.OrderedMap[string, *Document] `json:"properties,omitempty"`
}

// ToDocument renders a tree into its wire form. With a nil loc, localized
// messages fall back to their default text and rendering cannot fail.
func ToDocument(e Errors, loc Localizer) (*Document, error) {
	if e == nil {
		return &Document{Errors: []string{}}, nil
	}

	own, _ := parts(e)
	doc := &Document{Errors: make([]string, 0, len(own))}
	for _, item := range own {
		msg, err := renderOne(item, loc, loc != nil)
		if err != nil {
			return nil, err
		}
		doc.Errors = append(doc.Errors, msg)
	}

	switch t := e.(type) {
	case *ArrayErrors:
		doc.Items = orderedmap.New[string, *Document]()
		for pair := t.oldest(); pair != nil; pair = pair.Next() {
			child, err := ToDocument(pair.Value, loc)
			if err != nil {
				return nil, err
			}
			doc.Items.Set(strconv.Itoa(pair.Key), child)
		}
	case *ObjectErrors:
		doc.Properties = orderedmap.New[string, *Document]()
		for pair := t.oldest(); pair != nil; pair = pair.Next() {
			child, err := ToDocument(pair.Value, loc)
			if err != nil {
				return nil, err
			}
			doc.Properties.Set(pair.Key, child)
		}
	}
	return doc, nil
}

// IsEmpty reports whether the document holds no message at any depth.
func (d *Document) IsEmpty() bool {
	if d == nil {
		return true
	}
	if len(d.Errors) > 0 {
		return false
	}
	for _, m := range []*orderedmap.OrderedMap[string, *Document]{d.Items, d.Properties} {
		if m == nil {
			continue
		}
		for pair := m.Oldest(); pair != nil; pair = pair.Next() {
			if !pair.Value.IsEmpty() {
				return false
			}
		}
	}
	return true
}

// MarshalJSON writes the document without HTML escaping, so messages such
// as "`4` must be `>= 5`" stay readable. Encoders that escape HTML (json.Marshal)
// still escape the result.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *Document) encode(buf *bytes.Buffer) error {
	errs := d.Errors
	if errs == nil {
		errs = []string{}
	}
	buf.WriteString(`{"errors":`)
	if err := writeJSON(buf, errs); err != nil {
		return err
	}

	sections := []struct {
		name     string
		children *orderedmap.OrderedMap[string, *Document]
	}{
		{name: "items", children: d.Items},
		{name: "properties", children: d.Properties},
	}
	for _, section := range sections {
		if section.children == nil {
			continue
		}
		buf.WriteString(`,"` + section.name + `":{`)
		first := true
		for pair := section.children.Oldest(); pair != nil; pair = pair.Next() {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			if err := writeJSON(buf, pair.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if pair.Value == nil {
				buf.WriteString("null")
				continue
			}
			if err := pair.Value.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return nil
}

func writeJSON(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}

// MarshalIndent renders the tree as indented JSON, handy for CLIs and logs.
func MarshalIndent(e Errors, loc Localizer, prefix, indent string) ([]byte, error) {
	doc, err := ToDocument(e, loc)
	if err != nil {
		return nil, err
	}
	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, prefix, indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func marshalTree(e Errors) ([]byte, error) {
	doc, err := ToDocument(e, nil)
	if err != nil {
		return nil, err
	}
	return doc.MarshalJSON()
}
