package parser

import (
	"strings"
	"testing"

	"github.com/dhamidi/apisig/sig"
)

const headerV2 = "// Signature format: 2.0\n"
const headerV3 = "// Signature format: 3.0\n"

func parse(t *testing.T, src string, opts ...Option) *sig.Codebase {
	t.Helper()
	api, err := ParseSource("test.txt", src, opts...)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return api
}

func parseErrorContains(t *testing.T, src, want string, opts ...Option) {
	t.Helper()
	_, err := ParseSource("test.txt", src, opts...)
	if err == nil {
		t.Fatalf("parse succeeded, want error containing %q", want)
	}
	if !strings.Contains(err.Error(), want) {
		t.Errorf("error = %q, want it to contain %q", err, want)
	}
}

func TestParseClassWithMembers(t *testing.T) {
	api := parse(t, headerV2+`
package test.pkg {
  public class Foo extends test.pkg.Bar implements java.lang.Runnable {
    ctor public Foo(int count);
    method public final java.lang.String name();
    method public static <T> T identity(T value);
    field public static final int LIMIT = 10;
  }
  public class Bar {
  }
}
`)

	if api.Format() != sig.FormatV2 {
		t.Errorf("format = %v, want 2.0", api.Format())
	}

	foo := api.FindClass("test.pkg.Foo")
	if foo == nil {
		t.Fatal("test.pkg.Foo not found")
	}
	bar := api.FindClass("test.pkg.Bar")
	if bar == nil || bar.IsStub {
		t.Fatal("test.pkg.Bar should be a declared class, not a stub")
	}

	// Forward reference within the file resolves to the declared class.
	if foo.SuperClass() != bar {
		t.Errorf("Foo superclass = %v, want the declared Bar", foo.SuperClass())
	}
	if bar.SuperClass() == nil || bar.SuperClass().QualifiedName != sig.JavaLangObject {
		t.Errorf("Bar superclass = %v, want java.lang.Object", bar.SuperClass())
	}

	runnable := api.FindClass("java.lang.Runnable")
	if runnable == nil || !runnable.IsStub || !runnable.IsInterface() {
		t.Fatalf("java.lang.Runnable should be an interface stub, got %+v", runnable)
	}
	if len(foo.Interfaces()) != 1 || foo.Interfaces()[0] != runnable {
		t.Errorf("Foo interfaces = %v, want [java.lang.Runnable]", foo.Interfaces())
	}

	ctors := foo.Constructors()
	if len(ctors) != 1 {
		t.Fatalf("constructors = %d, want 1", len(ctors))
	}
	ctor := ctors[0]
	if !ctor.IsConstructor || ctor.Name != "Foo" {
		t.Errorf("ctor = %q IsConstructor=%v", ctor.Name, ctor.IsConstructor)
	}
	if ctor.ReturnType.String() != "test.pkg.Foo" {
		t.Errorf("ctor return type = %q, want test.pkg.Foo", ctor.ReturnType)
	}
	if len(ctor.Parameters) != 1 || ctor.Parameters[0].Name != "count" || ctor.Parameters[0].Type.String() != "int" {
		t.Errorf("ctor parameters = %+v", ctor.Parameters)
	}

	name := foo.FindMethod("name", "")
	if name == nil {
		t.Fatal("method name() not found")
	}
	if name.ReturnType.String() != "java.lang.String" || !name.Modifiers.Final {
		t.Errorf("name() = return %q final=%v", name.ReturnType, name.Modifiers.Final)
	}
	if name.Modifiers.Visibility != sig.VisibilityPublic {
		t.Errorf("name() visibility = %v, want public", name.Modifiers.Visibility)
	}

	identity := foo.FindMethod("identity", "T")
	if identity == nil {
		t.Fatal("method identity(T) not found")
	}
	if identity.TypeParameters.String() != "<T>" || identity.ReturnType.String() != "T" {
		t.Errorf("identity = typeparams %q return %q", identity.TypeParameters, identity.ReturnType)
	}

	limit := foo.FindField("LIMIT")
	if limit == nil {
		t.Fatal("field LIMIT not found")
	}
	if !limit.HasValue || limit.Value != int32(10) {
		t.Errorf("LIMIT value = %#v, want int32(10)", limit.Value)
	}
	if !limit.Modifiers.Static || !limit.Modifiers.Final {
		t.Errorf("LIMIT modifiers = %+v, want static final", limit.Modifiers)
	}
}

func TestParameterPlaceholderNames(t *testing.T) {
	api := parse(t, headerV2+`
package test.pkg {
  public class Foo {
    method public void f(int, long size);
  }
}
`)
	m := api.FindClass("test.pkg.Foo").FindMethod("f", "int,long")
	if m == nil {
		t.Fatal("method f not found")
	}
	first := m.Parameters[0]
	if first.Name != "arg1" {
		t.Errorf("placeholder name = %q, want arg1", first.Name)
	}
	if _, ok := first.PublicName(); ok {
		t.Error("placeholder parameter should report no public name")
	}
	second := m.Parameters[1]
	if second.Name != "size" {
		t.Errorf("declared name = %q, want size", second.Name)
	}
	if name, ok := second.PublicName(); !ok || name != "size" {
		t.Errorf("PublicName() = %q, %v", name, ok)
	}
}

func TestKotlinNullSuffixes(t *testing.T) {
	api := parse(t, headerV3+`
package test.pkg {
  public class Foo {
    method public java.lang.String? maybe();
    method public java.lang.String sure();
    method public java.lang.String! platform();
    method public int primitive();
    method public void consume(java.lang.String!... args);
  }
}
`)
	foo := api.FindClass("test.pkg.Foo")

	maybe := foo.FindMethod("maybe", "")
	if maybe.ReturnType.String() != "java.lang.String" {
		t.Errorf("maybe() return type = %q, suffix should be stripped", maybe.ReturnType)
	}
	if !maybe.Modifiers.HasAnnotation(sig.AnnotationNullable) {
		t.Error("maybe() should carry the Nullable annotation")
	}

	sure := foo.FindMethod("sure", "")
	if !sure.Modifiers.HasAnnotation(sig.AnnotationNonNull) {
		t.Error("sure() should carry the NonNull annotation")
	}

	platform := foo.FindMethod("platform", "")
	if platform.ReturnType.String() != "java.lang.String" {
		t.Errorf("platform() return type = %q", platform.ReturnType)
	}
	if platform.Modifiers.HasNullnessAnnotation() {
		t.Error("platform type should carry no nullness annotation")
	}

	primitive := foo.FindMethod("primitive", "")
	if primitive.Modifiers.HasNullnessAnnotation() {
		t.Error("primitive return type should carry no nullness annotation")
	}

	consume := foo.FindMethod("consume", "java.lang.String...")
	if consume == nil {
		t.Fatal("consume(java.lang.String...) not found")
	}
	arg := consume.Parameters[0]
	if arg.Type.String() != "java.lang.String..." {
		t.Errorf("vararg type = %q, want java.lang.String...", arg.Type)
	}
	if !arg.IsVarargs() || !consume.IsVarargs() {
		t.Error("vararg flag should be set on parameter and method")
	}
	if arg.Modifiers.HasNullnessAnnotation() {
		t.Error("platform vararg should carry no nullness annotation")
	}
}

func TestNullSuffixRejectedInV2(t *testing.T) {
	parseErrorContains(t, headerV2+`
package test.pkg {
  public class Foo {
    method public java.lang.String? maybe();
  }
}
`, "does not support Kotlin-style null type syntax")
}

func TestHeaderValidation(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		parseErrorContains(t, "package test.pkg {\n}\n", "must start with")
	})
	t.Run("unknown version", func(t *testing.T) {
		parseErrorContains(t, "// Signature format: 9.9\n", "unknown signature format version")
	})
	t.Run("empty first file", func(t *testing.T) {
		parseErrorContains(t, "  \n\n", "empty signature file")
	})
}

func TestFormatMismatchAcrossFiles(t *testing.T) {
	_, err := ParseFiles([]SourceFile{
		{Path: "a.txt", Content: []byte(headerV2 + "package a {\n}\n")},
		{Path: "b.txt", Content: []byte(headerV3 + "package b {\n}\n")},
	})
	if err == nil || !strings.Contains(err.Error(), "does not match") {
		t.Errorf("error = %v, want format mismatch", err)
	}
}

func TestEmptySecondFileIsNoOp(t *testing.T) {
	api, err := ParseFiles([]SourceFile{
		{Path: "a.txt", Content: []byte(headerV2 + "package test.pkg {\n  public class Foo {\n  }\n}\n")},
		{Path: "b.txt", Content: []byte("\n  \n")},
	})
	if err != nil {
		t.Fatal(err)
	}
	if api.FindClass("test.pkg.Foo") == nil {
		t.Error("class from first file missing")
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	src := headerV2 + `
package test.pkg {
  public class Foo extends test.pkg.Base implements java.lang.Cloneable {
    ctor public Foo();
    method public void f(int x);
    field public int count;
  }
}
`
	api, err := ParseFiles([]SourceFile{
		{Path: "a.txt", Content: []byte(src)},
		{Path: "b.txt", Content: []byte(src)},
	})
	if err != nil {
		t.Fatal(err)
	}
	foo := api.FindClass("test.pkg.Foo")
	if len(foo.Constructors()) != 1 || len(foo.Methods()) != 1 || len(foo.Fields()) != 1 {
		t.Errorf("members after double merge = %d ctors, %d methods, %d fields, want 1 each",
			len(foo.Constructors()), len(foo.Methods()), len(foo.Fields()))
	}
	if len(foo.Interfaces()) != 1 {
		t.Errorf("interfaces after double merge = %d, want 1", len(foo.Interfaces()))
	}
}

func TestMergeAddsMembersAcrossFiles(t *testing.T) {
	api, err := ParseFiles([]SourceFile{
		{Path: "a.txt", Content: []byte(headerV2 + `
package test.pkg {
  public class Foo {
    method public void f();
  }
}
`)},
		{Path: "b.txt", Content: []byte(headerV2 + `
package test.pkg {
  public class Foo {
    method public void g();
  }
}
`)},
	})
	if err != nil {
		t.Fatal(err)
	}
	foo := api.FindClass("test.pkg.Foo")
	if len(foo.Methods()) != 2 {
		t.Errorf("merged methods = %d, want 2", len(foo.Methods()))
	}
}

func TestContradictingPackageModifiers(t *testing.T) {
	_, err := ParseFiles([]SourceFile{
		{Path: "a.txt", Content: []byte(headerV2 + "package test.pkg {\n}\n")},
		{Path: "b.txt", Content: []byte(headerV2 + "package @RestrictTo(LIBRARY) test.pkg {\n}\n")},
	})
	if err == nil || !strings.Contains(err.Error(), "contradicting declaration of package") {
		t.Errorf("error = %v, want contradicting package declaration", err)
	}
}

func TestIncompatibleClassRedeclaration(t *testing.T) {
	t.Run("kind change", func(t *testing.T) {
		parseErrorContains(t, headerV2+`
package test.pkg {
  public class Foo {
  }
  public interface Foo {
  }
}
`, "incompatible redeclaration")
	})
	t.Run("modifier change", func(t *testing.T) {
		parseErrorContains(t, headerV2+`
package test.pkg {
  public final class Foo {
  }
  public class Foo {
  }
}
`, "incompatible modifiers")
	})
}

func TestInnerClassReconstitution(t *testing.T) {
	api := parse(t, headerV2+`
package test.pkg {
  public class Outer {
  }
  public class Outer.Inner {
    ctor public Outer.Inner();
  }
}
`)
	outer := api.FindClass("test.pkg.Outer")
	inner := api.FindClass("test.pkg.Outer.Inner")
	if inner == nil {
		t.Fatal("inner class not found")
	}
	if inner.SimpleName() != "Inner" {
		t.Errorf("inner simple name = %q, want Inner", inner.SimpleName())
	}
	if inner.ContainingClass() != outer {
		t.Errorf("inner containing class = %v, want Outer", inner.ContainingClass())
	}
	if got := outer.InnerClasses(); len(got) != 1 || got[0] != inner {
		t.Errorf("Outer.InnerClasses() = %v", got)
	}

	// The package lists only top-level classes after resolution.
	pkg := api.FindPackage("test.pkg")
	for _, c := range pkg.Classes() {
		if c == inner {
			t.Error("inner class still listed at package level")
		}
	}
}

func TestInnerClassWithUndeclaredOuter(t *testing.T) {
	api := parse(t, headerV2+`
package test.pkg {
  public class Only.Inner {
  }
}
`)
	outer := api.FindClass("test.pkg.Only")
	if outer == nil || !outer.IsStub {
		t.Fatalf("outer = %+v, want a synthesized stub", outer)
	}
	inner := api.FindClass("test.pkg.Only.Inner")
	if inner.ContainingClass() != outer {
		t.Error("inner class not linked to stub outer")
	}
}

func TestEnumDefaults(t *testing.T) {
	api := parse(t, headerV2+`
package test.pkg {
  public enum Suit {
    enum_constant public static final test.pkg.Suit HEARTS;
  }
}
`)
	suit := api.FindClass("test.pkg.Suit")
	if !suit.IsEnum() {
		t.Fatalf("kind = %v, want enum", suit.Kind)
	}
	if !suit.Modifiers.Final {
		t.Error("enum should be implicitly final")
	}
	if suit.Modifiers.Static {
		t.Error("top-level enum should not be static")
	}
	if suit.SuperClass() == nil || suit.SuperClass().QualifiedName != sig.JavaLangEnum {
		t.Errorf("enum superclass = %v, want java.lang.Enum", suit.SuperClass())
	}
	hearts := suit.FindField("HEARTS")
	if hearts == nil || !hearts.IsEnumConstant {
		t.Errorf("HEARTS = %+v, want an enum constant", hearts)
	}
}

func TestNestedEnumKeepsStatic(t *testing.T) {
	api := parse(t, headerV2+`
package test.pkg {
  public enum Outer.Kind {
  }
}
`)
	kind := api.FindClass("test.pkg.Outer.Kind")
	if !kind.Modifiers.Static {
		t.Error("nested enum should be implicitly static")
	}
}

func TestAnnotationTypeDefaults(t *testing.T) {
	api := parse(t, headerV2+`
package test.pkg {
  public @interface Marker {
    method public abstract int value() default 0;
  }
}
`)
	marker := api.FindClass("test.pkg.Marker")
	if !marker.IsAnnotation() {
		t.Fatalf("kind = %v, want annotation", marker.Kind)
	}
	if !marker.Modifiers.Abstract {
		t.Error("annotation type should be implicitly abstract")
	}
	if marker.SuperClass() == nil || marker.SuperClass().QualifiedName != sig.JavaLangAnnotation {
		t.Errorf("annotation superclass = %v, want java.lang.annotation.Annotation", marker.SuperClass())
	}
	value := marker.FindMethod("value", "")
	if value.AnnotationDefault != "0" {
		t.Errorf("annotation default = %q, want 0", value.AnnotationDefault)
	}
}

func TestInterfaceDefaults(t *testing.T) {
	api := parse(t, headerV2+`
package test.pkg {
  public interface Closer extends java.lang.AutoCloseable, java.io.Flushable {
  }
}
`)
	closer := api.FindClass("test.pkg.Closer")
	if !closer.Modifiers.Abstract {
		t.Error("interface should be implicitly abstract")
	}
	if len(closer.Interfaces()) != 2 {
		t.Fatalf("extended interfaces = %d, want 2", len(closer.Interfaces()))
	}
	for _, itf := range closer.Interfaces() {
		if !itf.IsInterface() {
			t.Errorf("%s resolved as %v, want interface", itf.QualifiedName, itf.Kind)
		}
	}
}

func TestThrowsResolution(t *testing.T) {
	api := parse(t, headerV2+`
package test.pkg {
  public class Foo {
    method public void fail() throws test.pkg.MyException, java.io.IOException;
  }
}
`)
	m := api.FindClass("test.pkg.Foo").FindMethod("fail", "")
	throws := m.Throws()
	if len(throws) != 2 {
		t.Fatalf("throws = %d classes, want 2", len(throws))
	}
	for _, exc := range throws {
		if !exc.IsStub {
			t.Errorf("%s should be a stub", exc.QualifiedName)
		}
		if exc.SuperClass() == nil || exc.SuperClass().QualifiedName != sig.JavaLangThrowable {
			t.Errorf("%s superclass = %v, want java.lang.Throwable", exc.QualifiedName, exc.SuperClass())
		}
	}
	names := m.ThrowsNames()
	if len(names) != 2 || names[0] != "test.pkg.MyException" || names[1] != "java.io.IOException" {
		t.Errorf("throws names = %v", names)
	}
}

type fakeResolver struct {
	classes map[string]*sig.Class
}

func (r *fakeResolver) ResolveClass(qualifiedName string) *sig.Class {
	return r.classes[qualifiedName]
}

func TestExternalResolverIsConsulted(t *testing.T) {
	mods := sig.NewModifiers()
	mods.Visibility = sig.VisibilityPublic
	runnable := sig.NewClass("java.lang.Runnable", "Runnable", sig.ClassKindInterface, mods)
	resolver := &fakeResolver{classes: map[string]*sig.Class{"java.lang.Runnable": runnable}}

	api := parse(t, headerV2+`
package test.pkg {
  public class Foo implements java.lang.Runnable {
  }
}
`, WithClassResolver(resolver))

	got := api.FindClass("java.lang.Runnable")
	if got != runnable {
		t.Errorf("resolved class = %p, want the resolver's instance %p", got, runnable)
	}
	if got.IsStub {
		t.Error("externally resolved class should not be a stub")
	}
}

func TestAnnotationUnshortening(t *testing.T) {
	api := parse(t, headerV2+`
package test.pkg {
  public class Foo {
    method @Nullable public java.lang.String maybe();
    method @SystemApi public void sys();
    method @MyAnn public void custom();
    field @IntRange(from = 1) public int count;
  }
}
`, WithShortAnnotations(map[string]string{"MyAnn": "com.example."}))
	foo := api.FindClass("test.pkg.Foo")

	if !foo.FindMethod("maybe", "").Modifiers.HasAnnotation(sig.AnnotationNullable) {
		t.Error("@Nullable should expand to androidx.annotation.Nullable")
	}
	if !foo.FindMethod("sys", "").Modifiers.HasAnnotation("android.annotation.SystemApi") {
		t.Error("@SystemApi should expand to android.annotation.SystemApi")
	}
	if !foo.FindMethod("custom", "").Modifiers.HasAnnotation("com.example.MyAnn") {
		t.Error("@MyAnn should expand with the configured prefix")
	}

	count := foo.FindField("count")
	annotations := count.Modifiers.Annotations()
	if len(annotations) != 1 || annotations[0] != "androidx.annotation.IntRange(from = 1)" {
		t.Errorf("field annotations = %q", annotations)
	}
}

func TestParameterDefaults(t *testing.T) {
	api := parse(t, headerV2+`
package test.pkg {
  public class Foo {
    method public void go(optional int x, int y = 42, java.lang.String s);
  }
}
`)
	m := api.FindClass("test.pkg.Foo").FindMethod("go", "int,int,java.lang.String")
	if m == nil {
		t.Fatal("method go not found")
	}

	x := m.Parameters[0]
	if !x.HasDefault || x.DefaultValue != sig.UnknownDefaultValue {
		t.Errorf("optional parameter = HasDefault %v DefaultValue %q", x.HasDefault, x.DefaultValue)
	}
	y := m.Parameters[1]
	if !y.HasDefault || y.DefaultValue != "42" {
		t.Errorf("defaulted parameter = HasDefault %v DefaultValue %q", y.HasDefault, y.DefaultValue)
	}
	s := m.Parameters[2]
	if s.HasDefault {
		t.Error("plain parameter should have no default")
	}
}

func TestGenericClassDeclaration(t *testing.T) {
	api := parse(t, headerV2+`
package test.pkg {
  public class Box<T extends java.lang.Comparable<T>> {
    method public T get();
  }
  public class Sub extends test.pkg.Box<java.lang.String> {
  }
}
`)
	box := api.FindClass("test.pkg.Box")
	if box == nil {
		t.Fatal("generic class name not split from its type parameters")
	}
	if names := box.TypeParameters.Names(); len(names) != 1 || names[0] != "T" {
		t.Errorf("type parameter names = %v, want [T]", names)
	}

	sub := api.FindClass("test.pkg.Sub")
	if sub.SuperClass() != box {
		t.Errorf("Sub superclass = %v, want Box after generics scrubbing", sub.SuperClass())
	}
	if sub.SuperClassType().String() != "test.pkg.Box<java.lang.String>" {
		t.Errorf("Sub declared superclass type = %q", sub.SuperClassType())
	}
}

func TestPropertyMember(t *testing.T) {
	api := parse(t, headerV2+`
package test.pkg {
  public class Foo {
    property public final java.lang.String name;
  }
}
`)
	props := api.FindClass("test.pkg.Foo").Properties()
	if len(props) != 1 || props[0].Name != "name" || props[0].Type.String() != "java.lang.String" {
		t.Errorf("properties = %+v", props)
	}
}

func TestBlockCommentsAreIgnored(t *testing.T) {
	api := parse(t, headerV2+`
package test.pkg {
  /* a block comment,
     spanning lines { } ; */
  public class Foo {
  }
}
`)
	if api.FindClass("test.pkg.Foo") == nil {
		t.Error("class after block comment not parsed")
	}
}

func TestParseErrorCarriesFileAndLine(t *testing.T) {
	_, err := ParseSource("api.txt", headerV2+`
package test.pkg {
  public class Foo {
    method public void broken(
`)
	if err == nil {
		t.Fatal("parse succeeded, want error")
	}
	if !strings.HasPrefix(err.Error(), "api.txt:") {
		t.Errorf("error = %q, want file:line prefix", err)
	}
}

func TestInterfaceGetsObjectSuperclass(t *testing.T) {
	api := parse(t, headerV2+`
package test.pkg {
  public interface Plain {
  }
}
`)
	plain := api.FindClass("test.pkg.Plain")
	if plain.SuperClass() == nil || plain.SuperClass().QualifiedName != sig.JavaLangObject {
		t.Errorf("interface superclass = %v, want java.lang.Object", plain.SuperClass())
	}
}
