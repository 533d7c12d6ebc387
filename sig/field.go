package sig

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field is a field or enum constant of a class. Value holds the typed
// constant when the signature file declared one: bool, int32 (byte, short,
// int and char codepoints), int64, float32, float64, string, or nil for the
// null literal.
type Field struct {
	Name           string
	Modifiers      *Modifiers
	Type           Type
	IsEnumConstant bool

	HasValue bool
	Value    interface{}

	cls *Class
}

func (f *Field) Class() *Class {
	return f.cls
}

// ValueString re-serializes the constant value in the literal form the
// signature grammar accepts, so that parsing the output yields an equivalent
// value.
func (f *Field) ValueString() string {
	if !f.HasValue {
		return ""
	}
	return ConstantSource(f.Value, f.Type)
}

// ConstantSource renders a typed constant value as signature-file literal
// text. Infinities and NaN use the division encodings the parser accepts.
func ConstantSource(value interface{}, typ Type) string {
	if value == nil {
		return "null"
	}
	switch v := value.(type) {
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10) + "L"
	case float32:
		switch {
		case math.IsInf(float64(v), 1):
			return "(1.0f/0.0f)"
		case math.IsInf(float64(v), -1):
			return "(-1.0f/0.0f)"
		case math.IsNaN(float64(v)):
			return "(0.0f/0.0f)"
		}
		return strconv.FormatFloat(float64(v), 'g', -1, 32) + "f"
	case float64:
		switch {
		case math.IsInf(v, 1):
			return "(1.0/0.0)"
		case math.IsInf(v, -1):
			return "(-1.0/0.0)"
		case math.IsNaN(v):
			return "(0.0/0.0)"
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		if typ.Erased() == JavaLangString || typ.Erased() == "String" {
			return JavaEscapeString(v)
		}
		// Unconverted raw literal for types outside the constant grammar.
		return v
	}
	return fmt.Sprintf("%v", value)
}

// JavaEscapeString renders s as a double-quoted Java string literal.
func JavaEscapeString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 || r > 0x7e {
				fmt.Fprintf(&sb, `\u%04x`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// Property is a Kotlin property member: modifiers, type and name only.
type Property struct {
	Name      string
	Modifiers *Modifiers
	Type      Type

	cls *Class
}

func (p *Property) Class() *Class {
	return p.cls
}
