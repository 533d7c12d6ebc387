package sig

import "sort"

// Package is a named package and its top-level classes. The grammar gives
// packages no visibility; their modifiers carry annotations only.
type Package struct {
	Name      string
	Modifiers *Modifiers

	classes map[string]*Class
}

func NewPackage(name string, mods *Modifiers) *Package {
	if mods == nil {
		mods = NewModifiers()
	}
	return &Package{
		Name:      name,
		Modifiers: mods,
		classes:   make(map[string]*Class),
	}
}

// AddClass registers a class as a top-level member of the package and sets
// its back link. Inner classes are pruned from this set after resolution.
func (p *Package) AddClass(c *Class) {
	p.classes[c.QualifiedName] = c
	c.pkg = p
}

// Classes returns the package's top-level classes sorted by qualified name.
func (p *Package) Classes() []*Class {
	classes := make([]*Class, 0, len(p.classes))
	for _, c := range p.classes {
		classes = append(classes, c)
	}
	sort.Slice(classes, func(i, j int) bool {
		return classes[i].QualifiedName < classes[j].QualifiedName
	})
	return classes
}

func (p *Package) FindClass(qualifiedName string) *Class {
	return p.classes[qualifiedName]
}

func (p *Package) removeClass(c *Class) {
	delete(p.classes, c.QualifiedName)
}
