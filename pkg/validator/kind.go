package validator

import "fmt"

// Kind identifies the constraint family of an Error.
type Kind uint8

const (
	KindMinimum Kind = iota + 1
	KindMaximum
	KindExclusiveMinimum
	KindExclusiveMaximum
	KindMultipleOf
	KindMinLength
	KindMaxLength
	KindPattern
	KindMinItems
	KindMaxItems
	KindUniqueItems
	KindMinProperties
	KindMaxProperties
	KindEnumerate
	KindCustom
)

var kindNames = map[Kind]string{
	KindMinimum:          "minimum",
	KindMaximum:          "maximum",
	KindExclusiveMinimum: "exclusive_minimum",
	KindExclusiveMaximum: "exclusive_maximum",
	KindMultipleOf:       "multiple_of",
	KindMinLength:        "min_length",
	KindMaxLength:        "max_length",
	KindPattern:          "pattern",
	KindMinItems:         "min_items",
	KindMaxItems:         "max_items",
	KindUniqueItems:      "unique_items",
	KindMinProperties:    "min_properties",
	KindMaxProperties:    "max_properties",
	KindEnumerate:        "enumerate",
	KindCustom:           "custom",
}

// String returns the snake_case code used on the wire and in message ids.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// MessageID is the localization id used when a rule does not choose its own.
func (k Kind) MessageID() string {
	return "validation." + k.String()
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
