// Package buildsettings models Xcode build settings as string keys mapped to
// a closed set of value kinds.
package buildsettings

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindList
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a build setting value: a string, a number, a boolean or a list
// of strings.
type Value struct {
	kind Kind
	str  string
	num  float64
	flag bool
	list []string
}

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a numeric value.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// List returns a string list value.
func List(items ...string) Value {
	return Value{kind: KindList, list: append([]string(nil), items...)}
}

// FromAny converts a decoded configuration value into a Value. Only
// strings, numbers, booleans and lists of scalars are accepted.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case string:
		return String(x), nil
	case bool:
		return Bool(x), nil
	case int:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case uint64:
		return Number(float64(x)), nil
	case float64:
		return Number(x), nil
	case []string:
		return List(x...), nil
	case []any:
		items := make([]string, 0, len(x))
		for i, item := range x {
			elem, err := FromAny(item)
			if err != nil {
				return Value{}, fmt.Errorf("list element %d: %w", i, err)
			}
			if elem.kind == KindList {
				return Value{}, fmt.Errorf("list element %d: nested lists are not supported", i)
			}
			items = append(items, elem.Render())
		}
		return List(items...), nil
	default:
		return Value{}, fmt.Errorf("unsupported build setting value of type %T", v)
	}
}

// Kind returns the variant held.
func (v Value) Kind() Kind { return v.kind }

// Str returns the string and whether v is a string.
func (v Value) Str() (string, bool) { return v.str, v.kind == KindString }

// Num returns the number and whether v is a number.
func (v Value) Num() (float64, bool) { return v.num, v.kind == KindNumber }

// Flag returns the boolean and whether v is a boolean.
func (v Value) Flag() (bool, bool) { return v.flag, v.kind == KindBool }

// Items returns a copy of the list and whether v is a list.
func (v Value) Items() ([]string, bool) {
	return append([]string(nil), v.list...), v.kind == KindList
}

// Equal reports whether both values hold the same variant and content.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.flag == o.flag
	default:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != o.list[i] {
				return false
			}
		}
		return true
	}
}

// Render formats the value the way xcconfig files spell it: booleans as
// YES/NO, lists space separated with elements containing spaces quoted.
func (v Value) Render() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		if v.flag {
			return "YES"
		}
		return "NO"
	case KindList:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			if strings.ContainsAny(item, " \t") {
				item = strconv.Quote(item)
			}
			parts[i] = item
		}
		return strings.Join(parts, " ")
	default:
		return v.str
	}
}
