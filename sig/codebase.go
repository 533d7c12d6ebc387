package sig

import (
	"sort"
	"strings"
)

// ClassResolver materializes classes for qualified names that are not
// defined in the parsed signature files, typically backed by a platform API
// database. Returning nil means the name is unknown to the resolver too.
type ClassResolver interface {
	ResolveClass(qualifiedName string) *Class
}

// Codebase owns every package and class parsed from one or more signature
// files merged together. It is populated by the parser, finalized by
// ResolveReferences, and read-only afterwards. A Codebase is not safe for
// concurrent mutation; parse sessions must be serialized by the caller.
type Codebase struct {
	format   Format
	packages map[string]*Package
	classes  map[string]*Class
}

func NewCodebase() *Codebase {
	return &Codebase{
		packages: make(map[string]*Package),
		classes:  make(map[string]*Class),
	}
}

// Format is the signature format shared by all files merged into this
// codebase, FormatUnknown before the first file's header has been read.
func (cb *Codebase) Format() Format {
	return cb.format
}

func (cb *Codebase) SetFormat(f Format) {
	cb.format = f
}

func (cb *Codebase) FindPackage(name string) *Package {
	return cb.packages[name]
}

func (cb *Codebase) AddPackage(p *Package) {
	cb.packages[p.Name] = p
}

// Packages returns all packages sorted by name.
func (cb *Codebase) Packages() []*Package {
	pkgs := make([]*Package, 0, len(cb.packages))
	for _, p := range cb.packages {
		pkgs = append(pkgs, p)
	}
	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].Name < pkgs[j].Name })
	return pkgs
}

// FindClass looks up a class by exact qualified name. No generics stripping
// happens at this layer.
func (cb *Codebase) FindClass(qualifiedName string) *Class {
	return cb.classes[qualifiedName]
}

// AddClass registers a parsed class under its package and in the global
// index.
func (cb *Codebase) AddClass(pkg *Package, c *Class) {
	pkg.AddClass(c)
	cb.classes[c.QualifiedName] = c
}

// Classes returns every known class, including stubs, sorted by qualified
// name.
func (cb *Codebase) Classes() []*Class {
	classes := make([]*Class, 0, len(cb.classes))
	for _, c := range cb.classes {
		classes = append(classes, c)
	}
	sort.Slice(classes, func(i, j int) bool {
		return classes[i].QualifiedName < classes[j].QualifiedName
	})
	return classes
}

// GetOrCreateClass returns the class with the given qualified name,
// consulting the external resolver and finally synthesizing a local stub.
// It never fails: unknown names become opaque stub classes.
func (cb *Codebase) GetOrCreateClass(qualifiedName string, isInterface bool, resolver ClassResolver) *Class {
	c, _ := cb.getOrCreateClass(qualifiedName, isInterface, resolver)
	return c
}

// getOrCreateClass additionally reports whether a new stub was created,
// which the resolver needs to decide about synthesizing superclasses.
func (cb *Codebase) getOrCreateClass(qualifiedName string, isInterface bool, resolver ClassResolver) (*Class, bool) {
	if c := cb.classes[qualifiedName]; c != nil {
		return c, false
	}
	if resolver != nil {
		if c := resolver.ResolveClass(qualifiedName); c != nil {
			cb.classes[qualifiedName] = c
			return c, false
		}
	}
	return cb.createStub(qualifiedName, isInterface), true
}

func (cb *Codebase) createStub(qualifiedName string, isInterface bool) *Class {
	pkgName, simpleName := splitQualifiedName(qualifiedName)

	kind := ClassKindClass
	if isInterface {
		kind = ClassKindInterface
	}
	mods := NewModifiers()
	mods.Visibility = VisibilityPublic

	stub := NewClass(qualifiedName, simpleName, kind, mods)
	stub.IsStub = true

	pkg := cb.packages[pkgName]
	if pkg == nil {
		pkg = NewPackage(pkgName, nil)
		cb.AddPackage(pkg)
	}
	cb.AddClass(pkg, stub)

	// Keep the type hierarchy walkable: every stub class descends from
	// Object unless the resolver later overrides it (exception stubs get
	// Throwable).
	if !isInterface && qualifiedName != JavaLangObject {
		object, _ := cb.getOrCreateClass(JavaLangObject, false, nil)
		stub.setSuperClass(object, NewType(JavaLangObject))
	}
	return stub
}

func splitQualifiedName(qualifiedName string) (pkgName, simpleName string) {
	if i := strings.LastIndex(qualifiedName, "."); i >= 0 {
		return qualifiedName[:i], qualifiedName[i+1:]
	}
	return "", qualifiedName
}
