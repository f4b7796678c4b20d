package table

import (
	"strings"
)

// ColumnType is the type tag declared for a column in the second header row.
type ColumnType uint8

const (
	String ColumnType = iota
	Enum
	Numeric
	Date
)

var columnTypeNames = [...]string{
	String:  "string",
	Enum:    "enum",
	Numeric: "numeric",
	Date:    "date",
}

// String returns the tag as it appears in a source file.
func (c ColumnType) String() string {
	if int(c) < len(columnTypeNames) {
		return columnTypeNames[c]
	}
	return "unknown"
}

// ParseColumnType maps a declared type tag onto a ColumnType.
// Tags are matched exactly after trimming; anything else is a FormatError.
func ParseColumnType(tag string) (ColumnType, error) {
	tag = strings.TrimSpace(tag)
	for i, name := range columnTypeNames {
		if tag == name {
			return ColumnType(i), nil
		}
	}
	return 0, &FormatError{Reason: "unrecognized column type " + quote(tag)}
}

func quote(s string) string {
	return `"` + s + `"`
}
