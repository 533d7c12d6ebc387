package sig

import "strings"

// DeferredRefs records the name-based forward references collected while
// parsing: superclass names and interface names keyed by class. The maps
// exist only between parsing and resolution; ResolveReferences consumes
// them.
type DeferredRefs struct {
	Superclasses map[*Class]string
	Interfaces   map[*Class][]string
}

func NewDeferredRefs() *DeferredRefs {
	return &DeferredRefs{
		Superclasses: make(map[*Class]string),
		Interfaces:   make(map[*Class][]string),
	}
}

func (r *DeferredRefs) SetSuperclass(c *Class, name string) {
	r.Superclasses[c] = name
}

// AddInterface records an interface name for a class, ignoring duplicates so
// that merging identical files stays idempotent.
func (r *DeferredRefs) AddInterface(c *Class, name string) {
	for _, existing := range r.Interfaces[c] {
		if existing == name {
			return
		}
	}
	r.Interfaces[c] = append(r.Interfaces[c], name)
}

// ResolveReferences runs the whole-codebase resolution passes after all
// files of a session have been parsed. The pass order is fixed:
// superclasses, interfaces, throws lists, inner classes. Unknown names
// resolve to stub classes, never to errors.
func ResolveReferences(cb *Codebase, refs *DeferredRefs, resolver ClassResolver) {
	resolveSuperclasses(cb, refs, resolver)
	resolveInterfaces(cb, refs, resolver)
	resolveThrowsClasses(cb, resolver)
	resolveInnerClasses(cb)
}

func resolveSuperclasses(cb *Codebase, refs *DeferredRefs, resolver ClassResolver) {
	for _, c := range cb.Classes() {
		if c.QualifiedName == JavaLangObject {
			continue
		}
		name := refs.Superclasses[c]
		if name == "" {
			switch {
			case c.IsEnum():
				name = JavaLangEnum
			case c.IsAnnotation():
				name = JavaLangAnnotation
			case c.superClass != nil:
				// Already linked (stub defaults); leave as is.
				continue
			default:
				name = JavaLangObject
			}
		}
		if name == c.QualifiedName {
			continue
		}
		super, _ := cb.getOrCreateClass(scrubGenerics(name), false, resolver)
		c.setSuperClass(super, NewType(name))
	}
}

func resolveInterfaces(cb *Codebase, refs *DeferredRefs, resolver ClassResolver) {
	for _, c := range cb.Classes() {
		for _, name := range refs.Interfaces[c] {
			itf, _ := cb.getOrCreateClass(scrubGenerics(name), true, resolver)
			c.addInterface(itf)
		}
	}
}

func resolveThrowsClasses(cb *Codebase, resolver ClassResolver) {
	for _, c := range cb.Classes() {
		for _, m := range append(append([]*Method{}, c.constructors...), c.methods...) {
			if len(m.throwsNames) == 0 {
				continue
			}
			m.throws = make([]*Class, 0, len(m.throwsNames))
			for _, name := range m.throwsNames {
				exc, created := cb.getOrCreateClass(name, false, resolver)
				// Stubbed exceptions descend from Throwable so exception
				// hierarchies remain walkable even for classes absent from
				// the parsed files.
				if created && name != JavaLangThrowable {
					throwable, _ := cb.getOrCreateClass(JavaLangThrowable, false, resolver)
					exc.setSuperClass(throwable, NewType(JavaLangThrowable))
				}
				m.throws = append(m.throws, exc)
			}
			m.throwsNames = nil
		}
	}
}

// resolveInnerClasses rebuilds containment for classes declared with dotted
// simple names ("Outer.Inner"): the outer class must come from this
// codebase, never from the external resolver.
func resolveInnerClasses(cb *Codebase) {
	classes := cb.Classes()
	for _, c := range classes {
		dot := strings.LastIndex(c.simpleName, ".")
		if dot < 0 {
			continue
		}
		innerName := c.simpleName[dot+1:]
		outerQualified := strings.TrimSuffix(c.QualifiedName, "."+innerName)
		outer, _ := cb.getOrCreateClass(outerQualified, false, nil)
		c.simpleName = innerName
		outer.addInnerClass(c)
	}
	for _, pkg := range cb.Packages() {
		for _, c := range pkg.Classes() {
			if c.containing != nil {
				pkg.removeClass(c)
			}
		}
	}
}

// scrubGenerics drops type arguments from a superclass or interface name so
// lookups match declared class names.
func scrubGenerics(name string) string {
	if i := strings.IndexByte(name, '<'); i >= 0 {
		return name[:i]
	}
	return name
}
