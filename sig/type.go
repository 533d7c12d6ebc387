package sig

import "strings"

// Type is a parsed type string from a signature file. Null suffixes and
// vararg markers have already been processed by the parser; the text retains
// generics, array brackets and type-use annotations as written.
type Type struct {
	text string
}

func NewType(text string) Type {
	return Type{text: text}
}

func (t Type) String() string {
	return t.text
}

func (t Type) IsPrimitive() bool {
	return IsPrimitiveName(t.text)
}

func (t Type) IsVoid() bool {
	return t.text == "void"
}

func (t Type) IsArray() bool {
	return strings.HasSuffix(t.text, "[]") || strings.HasSuffix(t.text, "...")
}

// Erased strips generic arguments, leaving the raw class or primitive name
// plus any array suffix.
func (t Type) Erased() string {
	var sb strings.Builder
	depth := 0
	for i := 0; i < len(t.text); i++ {
		switch t.text[i] {
		case '<':
			depth++
		case '>':
			depth--
		default:
			if depth == 0 {
				sb.WriteByte(t.text[i])
			}
		}
	}
	return sb.String()
}

func IsPrimitiveName(name string) bool {
	switch name {
	case "boolean", "byte", "char", "short", "int", "long", "float", "double":
		return true
	}
	return false
}

// TypeParameterList is the raw <...> span of a generic declaration. The span
// is kept as written and only split into names on demand.
type TypeParameterList struct {
	text string
}

func NewTypeParameterList(text string) TypeParameterList {
	return TypeParameterList{text: text}
}

func (tpl TypeParameterList) IsEmpty() bool {
	return tpl.text == ""
}

func (tpl TypeParameterList) String() string {
	return tpl.text
}

// Names returns the declared type parameter names, ignoring bounds. For
// "<T extends Comparable<T>, V>" it returns ["T", "V"].
func (tpl TypeParameterList) Names() []string {
	if tpl.IsEmpty() {
		return nil
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(tpl.text, "<"), ">")
	var names []string
	depth := 0
	start := 0
	flush := func(end int) {
		part := strings.TrimSpace(inner[start:end])
		if part == "" {
			return
		}
		if i := strings.IndexAny(part, " <"); i >= 0 {
			part = part[:i]
		}
		names = append(names, part)
	}
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}
	flush(len(inner))
	return names
}
