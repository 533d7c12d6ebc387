package sig

import "fmt"

// Diff reports API surface present in the baseline codebase but missing or
// incompatibly changed in the current one. Stub classes are referenced, not
// declared, so they never count as surface on either side. Additions are
// not reported; growing an API is compatible.
func Diff(baseline, current *Codebase) []string {
	var problems []string
	for _, c := range baseline.Classes() {
		if c.IsStub {
			continue
		}
		cur := current.FindClass(c.QualifiedName)
		if cur == nil || cur.IsStub {
			problems = append(problems, fmt.Sprintf("removed class %s", c.QualifiedName))
			continue
		}
		problems = append(problems, diffClass(c, cur)...)
	}
	return problems
}

func diffClass(old, cur *Class) []string {
	var problems []string
	name := old.QualifiedName

	if old.Kind != cur.Kind {
		problems = append(problems, fmt.Sprintf("class %s changed from %s to %s", name, old.Kind, cur.Kind))
	}
	if !old.Modifiers.Equal(cur.Modifiers) {
		problems = append(problems, fmt.Sprintf("class %s changed modifiers", name))
	}
	if oldSuper, curSuper := superName(old), superName(cur); oldSuper != curSuper {
		problems = append(problems, fmt.Sprintf("class %s changed superclass from %s to %s", name, oldSuper, curSuper))
	}
	for _, itf := range old.Interfaces() {
		if !implementsInterface(cur, itf.QualifiedName) {
			problems = append(problems, fmt.Sprintf("class %s no longer implements %s", name, itf.QualifiedName))
		}
	}

	for _, m := range old.Constructors() {
		if findConstructor(cur, m) == nil {
			problems = append(problems, fmt.Sprintf("removed constructor %s(%s)", name, m.parameterTypesKey()))
		}
	}
	for _, m := range old.Methods() {
		found := cur.FindMethod(m.Name, m.parameterTypesKey())
		if found == nil {
			problems = append(problems, fmt.Sprintf("removed method %s.%s(%s)", name, m.Name, m.parameterTypesKey()))
			continue
		}
		if found.ReturnType.String() != m.ReturnType.String() {
			problems = append(problems, fmt.Sprintf("method %s.%s changed return type from %s to %s",
				name, m.Name, m.ReturnType, found.ReturnType))
		}
		if !m.Modifiers.Equal(found.Modifiers) {
			problems = append(problems, fmt.Sprintf("method %s.%s changed modifiers", name, m.Name))
		}
	}
	for _, f := range old.Fields() {
		found := cur.FindField(f.Name)
		if found == nil {
			problems = append(problems, fmt.Sprintf("removed field %s.%s", name, f.Name))
			continue
		}
		if found.Type.String() != f.Type.String() {
			problems = append(problems, fmt.Sprintf("field %s.%s changed type from %s to %s",
				name, f.Name, f.Type, found.Type))
		}
		if f.HasValue && found.HasValue && f.ValueString() != found.ValueString() {
			problems = append(problems, fmt.Sprintf("field %s.%s changed value from %s to %s",
				name, f.Name, f.ValueString(), found.ValueString()))
		}
	}
	for _, p := range old.Properties() {
		if findProperty(cur, p.Name) == nil {
			problems = append(problems, fmt.Sprintf("removed property %s.%s", name, p.Name))
		}
	}
	return problems
}

func superName(c *Class) string {
	if c.superClass == nil {
		return ""
	}
	return c.superClass.QualifiedName
}

func implementsInterface(c *Class, qualifiedName string) bool {
	for _, itf := range c.interfaces {
		if itf.QualifiedName == qualifiedName {
			return true
		}
	}
	return false
}

func findConstructor(c *Class, m *Method) *Method {
	for _, existing := range c.constructors {
		if existing.parameterTypesKey() == m.parameterTypesKey() {
			return existing
		}
	}
	return nil
}

func findProperty(c *Class, name string) *Property {
	for _, p := range c.properties {
		if p.Name == name {
			return p
		}
	}
	return nil
}
