package sig

import "strconv"

// UnknownDefaultValue marks a parameter that is known to have a default
// value whose text was not recorded in the signature file (the "optional"
// keyword). It is deliberately conflated with known defaults behind the
// single HasDefault flag; callers that care must compare against this
// sentinel.
const UnknownDefaultValue = "__unknown_default__"

// Parameter is one formal parameter of a constructor or method. Ordering is
// significant; Index is the 0-based position.
type Parameter struct {
	Index     int
	Name      string
	Type      Type
	Modifiers *Modifiers

	// HasDefault is set both for "= value" defaults and for the bare
	// "optional" keyword; in the latter case DefaultValue holds
	// UnknownDefaultValue.
	HasDefault   bool
	DefaultValue string

	publicName string
}

// NewParameter creates a parameter. declaredName may be empty, in which case
// Name is the positional placeholder argN and PublicName reports no name.
func NewParameter(index int, declaredName string, typ Type, mods *Modifiers) *Parameter {
	name := declaredName
	if name == "" {
		name = placeholderName(index)
	}
	return &Parameter{
		Index:      index,
		Name:       name,
		Type:       typ,
		Modifiers:  mods,
		publicName: declaredName,
	}
}

// PublicName returns the parameter name declared in the signature file, or
// false if the file omitted it and Name is a synthesized placeholder.
func (p *Parameter) PublicName() (string, bool) {
	return p.publicName, p.publicName != ""
}

func (p *Parameter) IsVarargs() bool {
	return p.Modifiers != nil && p.Modifiers.Vararg
}

func placeholderName(index int) string {
	return "arg" + strconv.Itoa(index+1)
}
