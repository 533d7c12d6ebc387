package parser

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/dhamidi/apisig/sig"
)

// SourceFile is one signature file to parse, already read into memory.
type SourceFile struct {
	Path    string
	Content []byte
}

type Option func(*session)

// WithClassResolver supplies the collaborator consulted for qualified names
// that are not defined in the parsed files.
func WithClassResolver(r sig.ClassResolver) Option {
	return func(s *session) {
		s.resolver = r
	}
}

// WithShortAnnotations extends the table used to re-qualify shortened
// annotation names. Entries map a short name to its package prefix and
// override the built-in table.
func WithShortAnnotations(table map[string]string) Option {
	return func(s *session) {
		for name, prefix := range table {
			s.annotations[name] = prefix
		}
	}
}

// session carries the state shared across all files merged into one
// codebase, most importantly the deferred-edge maps consumed by the
// resolution pass. It is private to one ParseFiles call and not safe to
// share across goroutines.
type session struct {
	api         *sig.Codebase
	refs        *sig.DeferredRefs
	resolver    sig.ClassResolver
	annotations map[string]string
}

// ParseFiles parses an ordered list of signature files into one merged
// codebase and resolves all deferred references. Later files may add members
// to classes and packages introduced by earlier files; identity is by
// qualified name, not source file. All files must declare the same format.
func ParseFiles(files []SourceFile, opts ...Option) (*sig.Codebase, error) {
	s := &session{
		api:         sig.NewCodebase(),
		refs:        sig.NewDeferredRefs(),
		annotations: sig.DefaultShortAnnotations(),
	}
	for _, opt := range opts {
		opt(s)
	}
	for i, f := range files {
		if err := s.parseFile(f.Path, f.Content, i == 0); err != nil {
			return nil, err
		}
	}
	sig.ResolveReferences(s.api, s.refs, s.resolver)
	return s.api, nil
}

// ParsePaths reads and parses the named files in order.
func ParsePaths(paths []string, opts ...Option) (*sig.Codebase, error) {
	files := make([]SourceFile, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read signature file: %w", err)
		}
		files = append(files, SourceFile{Path: path, Content: content})
	}
	return ParseFiles(files, opts...)
}

// ParseFile parses a single signature file from disk.
func ParseFile(path string, opts ...Option) (*sig.Codebase, error) {
	return ParsePaths([]string{path}, opts...)
}

// ParseSource parses signature text held in memory; filename is used for
// diagnostics only.
func ParseSource(filename, text string, opts ...Option) (*sig.Codebase, error) {
	return ParseFiles([]SourceFile{{Path: filename, Content: []byte(text)}}, opts...)
}

func (s *session) parseFile(path string, content []byte, first bool) error {
	format, headerLine, empty, err := parseHeader(path, content)
	if err != nil {
		return err
	}
	if empty {
		if !first {
			// A blank file merged after the first is a no-op.
			return nil
		}
		return parseErrorf(path, 0, "empty signature file")
	}
	if existing := s.api.Format(); existing != sig.FormatUnknown && existing != format {
		return parseErrorf(path, headerLine,
			"signature format %s does not match format %s of previously parsed files", format, existing)
	}
	s.api.SetFormat(format)

	if bytes.Contains(content, []byte("/*")) {
		content = stripBlockComments(content)
	}

	p := &fileParser{
		session:     s,
		file:        path,
		t:           NewTokenizer(path, content),
		kotlinNulls: format.KotlinNulls(),
	}
	return p.parse()
}

// parseHeader validates the format declaration at the top of a file. The
// header must be the first non-blank line. An all-blank file reports
// empty=true and no error; the caller decides whether that is tolerable.
func parseHeader(path string, content []byte) (format sig.Format, line int, empty bool, err error) {
	for i, raw := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		line = i + 1
		version, ok := strings.CutPrefix(trimmed, strings.TrimRight(sig.HeaderPrefix, " "))
		if !ok {
			return sig.FormatUnknown, line, false,
				parseErrorf(path, line, "signature file must start with %q", sig.HeaderPrefix)
		}
		format, ok = sig.FormatFromVersion(strings.TrimSpace(version))
		if !ok {
			return sig.FormatUnknown, line, false,
				parseErrorf(path, line, "unknown signature format version: %s", strings.TrimSpace(version))
		}
		return format, line, false, nil
	}
	return sig.FormatUnknown, 0, true, nil
}

// stripBlockComments blanks out /* ... */ spans while preserving newlines
// (line numbers) and string literal contents. Line comments stay: the
// grammar uses them to carry literal constant expressions and the tokenizer
// skips them itself.
func stripBlockComments(content []byte) []byte {
	out := make([]byte, 0, len(content))
	for i := 0; i < len(content); {
		ch := content[i]
		switch {
		case ch == '"':
			out = append(out, ch)
			i++
			for i < len(content) {
				c := content[i]
				out = append(out, c)
				i++
				if c == '\\' && i < len(content) {
					out = append(out, content[i])
					i++
					continue
				}
				if c == '"' || c == '\n' {
					break
				}
			}
		case ch == '/' && i+1 < len(content) && content[i+1] == '*':
			i += 2
			out = append(out, ' ', ' ')
			for i < len(content) {
				if content[i] == '*' && i+1 < len(content) && content[i+1] == '/' {
					out = append(out, ' ', ' ')
					i += 2
					break
				}
				if content[i] == '\n' {
					out = append(out, '\n')
				} else {
					out = append(out, ' ')
				}
				i++
			}
		default:
			out = append(out, ch)
			i++
		}
	}
	return out
}

// fileParser holds the per-file parse state: one tokenizer, one file name
// for diagnostics, and the format gate for Kotlin-style null suffixes.
type fileParser struct {
	*session
	file        string
	t           *Tokenizer
	kotlinNulls bool
}

func (p *fileParser) errorf(format string, args ...interface{}) error {
	return parseErrorf(p.file, p.t.Line(), format, args...)
}

func (p *fileParser) expect(want string, parenIsSep bool) error {
	token, err := p.t.RequireToken(parenIsSep)
	if err != nil {
		return err
	}
	if token != want {
		return p.errorf("expected '%s', found '%s'", want, token)
	}
	return nil
}

func (p *fileParser) parse() error {
	for {
		token, err := p.t.NextToken(false)
		if err != nil {
			return err
		}
		if token == "" {
			return nil
		}
		if token != "package" {
			return p.errorf("expected package, found '%s'", token)
		}
		if err := p.parsePackage(); err != nil {
			return err
		}
	}
}

func (p *fileParser) parsePackage() error {
	mods := sig.NewModifiers()
	token, err := p.t.RequireToken(false)
	if err != nil {
		return err
	}
	// Packages have no visibility in this grammar; their modifiers are
	// annotations only.
	for strings.HasPrefix(token, "@") {
		if err := p.parseAnnotation(token, mods); err != nil {
			return err
		}
		if token, err = p.t.RequireToken(false); err != nil {
			return err
		}
	}
	name := token
	if !isQualifiedIdent(name) {
		return p.errorf("invalid package name '%s'", name)
	}

	pkg := p.api.FindPackage(name)
	if pkg != nil {
		if !pkg.Modifiers.Equal(mods) {
			return p.errorf("contradicting declaration of package %s", name)
		}
	} else {
		pkg = sig.NewPackage(name, mods)
		p.api.AddPackage(pkg)
	}

	if err := p.expect("{", false); err != nil {
		return err
	}
	for {
		token, err := p.t.RequireToken(false)
		if err != nil {
			return err
		}
		if token == "}" {
			return nil
		}
		if err := p.parseClass(pkg, token); err != nil {
			return err
		}
	}
}

func (p *fileParser) parseClass(pkg *sig.Package, token string) error {
	mods := sig.NewModifiers()
	token, err := p.parseModifiers(token, mods, false)
	if err != nil {
		return err
	}

	var kind sig.ClassKind
	switch token {
	case "class":
		kind = sig.ClassKindClass
	case "interface":
		kind = sig.ClassKindInterface
		mods.Abstract = true
	case "@interface":
		kind = sig.ClassKindAnnotation
		mods.Abstract = true
	case "enum":
		kind = sig.ClassKindEnum
		mods.Final = true
		mods.Static = true
	default:
		return p.errorf("expected class, interface, @interface or enum, found '%s'", token)
	}

	nameToken, err := p.t.RequireToken(false)
	if err != nil {
		return err
	}
	name := nameToken
	typeParams := sig.TypeParameterList{}
	if i := strings.IndexByte(nameToken, '<'); i >= 0 {
		if !strings.HasSuffix(nameToken, ">") {
			return p.errorf("invalid class name '%s'", nameToken)
		}
		typeParams = sig.NewTypeParameterList(nameToken[i:])
		name = nameToken[:i]
	}
	if !isQualifiedIdent(name) {
		return p.errorf("invalid class name '%s'", name)
	}
	// Top-level enums drop the implicit static flag; it only means something
	// for nested enums.
	if kind == sig.ClassKindEnum && !strings.Contains(name, ".") {
		mods.Static = false
	}
	qualifiedName := pkg.Name + "." + name

	var superName string
	var interfaceNames []string
	if token, err = p.t.RequireToken(false); err != nil {
		return err
	}
	if token == "extends" {
		if kind == sig.ClassKindInterface {
			// For interfaces the extends list is the interface-extension
			// list.
			if interfaceNames, token, err = p.parseNameList(); err != nil {
				return err
			}
		} else {
			if superName, err = p.t.RequireToken(false); err != nil {
				return err
			}
			if token, err = p.t.RequireToken(false); err != nil {
				return err
			}
		}
	}
	if token == "implements" {
		var more []string
		if more, token, err = p.parseNameList(); err != nil {
			return err
		}
		interfaceNames = append(interfaceNames, more...)
	}
	if token != "{" {
		return p.errorf("expected '{', found '%s'", token)
	}

	cls := p.api.FindClass(qualifiedName)
	if cls != nil {
		// Merging a redeclaration from the same or a later file: the two
		// must agree structurally, then member lists accumulate onto the
		// shared instance.
		if cls.Kind != kind {
			return p.errorf("incompatible redeclaration of %s as %s, previously %s",
				qualifiedName, kind, cls.Kind)
		}
		if !cls.Modifiers.Equal(mods) {
			return p.errorf("incompatible modifiers in redeclaration of %s", qualifiedName)
		}
		if superName != "" {
			if prev := p.refs.Superclasses[cls]; prev != "" && prev != superName {
				return p.errorf("incompatible superclass %s in redeclaration of %s, previously %s",
					superName, qualifiedName, prev)
			}
			p.refs.SetSuperclass(cls, superName)
		}
	} else {
		cls = sig.NewClass(qualifiedName, name, kind, mods)
		cls.TypeParameters = typeParams
		p.api.AddClass(pkg, cls)
		if superName != "" {
			p.refs.SetSuperclass(cls, superName)
		}
	}
	for _, n := range interfaceNames {
		p.refs.AddInterface(cls, n)
	}

	for {
		token, err := p.t.RequireToken(false)
		if err != nil {
			return err
		}
		switch token {
		case "}":
			return nil
		case "ctor":
			err = p.parseConstructor(cls)
		case "method":
			err = p.parseMethod(cls)
		case "field":
			err = p.parseField(cls, false)
		case "enum_constant":
			err = p.parseField(cls, true)
		case "property":
			err = p.parseProperty(cls)
		default:
			return p.errorf("expected member declaration, found '%s'", token)
		}
		if err != nil {
			return err
		}
	}
}

// parseNameList reads comma-separated class names and returns them together
// with the first token following the list.
func (p *fileParser) parseNameList() ([]string, string, error) {
	var names []string
	for {
		name, err := p.t.RequireToken(false)
		if err != nil {
			return nil, "", err
		}
		names = append(names, name)
		token, err := p.t.RequireToken(false)
		if err != nil {
			return nil, "", err
		}
		if token != "," {
			return names, token, nil
		}
	}
}

// parseModifiers consumes annotations and modifier keywords until the first
// unrecognized token, which it returns. The keyword set is fixed and
// order-insensitive; absence of a visibility keyword leaves the
// package-private default.
func (p *fileParser) parseModifiers(token string, mods *sig.Modifiers, parenIsSep bool) (string, error) {
	for {
		if strings.HasPrefix(token, "@") && token != "@interface" {
			if err := p.parseAnnotation(token, mods); err != nil {
				return "", err
			}
		} else {
			switch token {
			case "public":
				mods.Visibility = sig.VisibilityPublic
			case "protected":
				mods.Visibility = sig.VisibilityProtected
			case "private":
				mods.Visibility = sig.VisibilityPrivate
			case "internal":
				mods.Visibility = sig.VisibilityInternal
			case "static":
				mods.Static = true
			case "final":
				mods.Final = true
			case "abstract":
				mods.Abstract = true
			case "deprecated":
				mods.Deprecated = true
			case "transient":
				mods.Transient = true
			case "volatile":
				mods.Volatile = true
			case "synchronized":
				mods.Synchronized = true
			case "native":
				mods.Native = true
			case "strictfp":
				mods.Strictfp = true
			case "sealed":
				mods.Sealed = true
			case "default":
				mods.Default = true
			case "infix":
				mods.Infix = true
			case "operator":
				mods.Operator = true
			case "inline":
				mods.Inline = true
			case "value":
				mods.Value = true
			case "suspend":
				mods.Suspend = true
			case "vararg":
				mods.Vararg = true
			case "fun":
				mods.Functional = true
			case "data":
				mods.Data = true
			default:
				return token, nil
			}
		}
		var err error
		if token, err = p.t.RequireToken(parenIsSep); err != nil {
			return "", err
		}
	}
}

// parseAnnotation records one @-token as an annotation source string. The
// balanced-parenthesis argument list is captured verbatim; short names are
// expanded back to their qualified form.
func (p *fileParser) parseAnnotation(token string, mods *sig.Modifiers) error {
	source := token[1:]
	if source == "" {
		return p.errorf("expected annotation name after '@'")
	}
	if i := strings.IndexByte(source, '('); i >= 0 {
		// The tokenizer stopped at a space inside the argument list; keep
		// scanning raw text until the parentheses balance out.
		if depth := parenDepth(source[i:]); depth > 0 {
			rest, err := p.t.ScanBalanced('(', ')', depth)
			if err != nil {
				return err
			}
			source += rest
		}
	} else {
		p.t.SkipWhitespace()
		if p.t.Peek() == '(' {
			args, err := p.t.ScanBalanced('(', ')', 0)
			if err != nil {
				return err
			}
			source += args
		}
	}

	name := source
	args := ""
	if i := strings.IndexByte(source, '('); i >= 0 {
		name, args = source[:i], source[i:]
	}
	if !isQualifiedIdent(name) {
		return p.errorf("invalid annotation name '%s'", name)
	}
	mods.AddAnnotation(sig.QualifyAnnotationName(name, p.annotations) + args)
	return nil
}

// parenDepth counts unbalanced opening parentheses in raw annotation text,
// ignoring string literal contents.
func parenDepth(s string) int {
	depth := 0
	inString := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if inString {
			if ch == '\\' {
				i++
			} else if ch == '"' {
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '(':
			depth++
		case ')':
			depth--
		}
	}
	return depth
}

// parseType assembles a full type string starting from the given token,
// merging trailing type-use annotations and detached array brackets, then
// applies vararg and Kotlin null-suffix processing. It returns the type, the
// varargs flag, and the first token after the type.
func (p *fileParser) parseType(token string, parenIsSep bool, mods *sig.Modifiers) (sig.Type, bool, string, error) {
	text := token
	var next string
	for {
		var err error
		if next, err = p.t.RequireToken(parenIsSep); err != nil {
			return sig.Type{}, false, "", err
		}
		if strings.HasPrefix(next, "@") {
			text += " " + next
			continue
		}
		if strings.HasPrefix(next, "[") {
			text += next
			continue
		}
		break
	}

	text, varargs, err := p.applyNullSuffix(text, mods)
	if err != nil {
		return sig.Type{}, false, "", err
	}
	return sig.NewType(text), varargs, next, nil
}

// applyNullSuffix handles Kotlin-style type suffixes under formats that
// declare them: trailing '?' is nullable (annotation synthesized, suffix
// stripped), '!' is platform nullness (stripped only), and no suffix on a
// non-primitive type is non-null. The '...' vararg marker is stripped before
// and reappended after so the two compose.
func (p *fileParser) applyNullSuffix(text string, mods *sig.Modifiers) (string, bool, error) {
	varargs := strings.HasSuffix(text, "...")
	if varargs {
		text = strings.TrimSuffix(text, "...")
	}
	switch {
	case strings.HasSuffix(text, "?"):
		if !p.kotlinNulls {
			return "", false, p.errorf(
				"format %s does not support Kotlin-style null type syntax: %s", p.api.Format(), text)
		}
		text = text[:len(text)-1]
		if !mods.HasNullnessAnnotation() {
			mods.AddAnnotation(sig.AnnotationNullable)
		}
	case strings.HasSuffix(text, "!"):
		if !p.kotlinNulls {
			return "", false, p.errorf(
				"format %s does not support Kotlin-style null type syntax: %s", p.api.Format(), text)
		}
		text = text[:len(text)-1]
	default:
		if p.kotlinNulls && text != "void" && !sig.IsPrimitiveName(text) && !mods.HasNullnessAnnotation() {
			mods.AddAnnotation(sig.AnnotationNonNull)
		}
	}
	if varargs {
		text += "..."
	}
	return text, varargs, nil
}

func (p *fileParser) parseTypeParameters(token string) (sig.TypeParameterList, string, error) {
	if token != "<" {
		return sig.TypeParameterList{}, token, nil
	}
	span, err := p.t.ScanBalanced('<', '>', 1)
	if err != nil {
		return sig.TypeParameterList{}, "", err
	}
	next, err := p.t.RequireToken(true)
	if err != nil {
		return sig.TypeParameterList{}, "", err
	}
	return sig.NewTypeParameterList("<" + span), next, nil
}

func (p *fileParser) parseConstructor(cls *sig.Class) error {
	mods := sig.NewModifiers()
	token, err := p.t.RequireToken(true)
	if err != nil {
		return err
	}
	if token, err = p.parseModifiers(token, mods, true); err != nil {
		return err
	}
	typeParams, token, err := p.parseTypeParameters(token)
	if err != nil {
		return err
	}
	if !isQualifiedIdent(token) {
		return p.errorf("invalid constructor name '%s'", token)
	}
	m := &sig.Method{
		Name:           token,
		IsConstructor:  true,
		Modifiers:      mods,
		ReturnType:     sig.NewType(cls.QualifiedName),
		TypeParameters: typeParams,
	}
	if err := p.expect("(", true); err != nil {
		return err
	}
	if err := p.parseParameters(m); err != nil {
		return err
	}
	token, err = p.t.RequireToken(true)
	if err != nil {
		return err
	}
	if token == "throws" {
		var names []string
		if names, token, err = p.parseThrows(); err != nil {
			return err
		}
		m.SetThrowsNames(names)
	}
	if token != ";" {
		return p.errorf("expected ';', found '%s'", token)
	}
	cls.AddConstructor(m)
	return nil
}

func (p *fileParser) parseMethod(cls *sig.Class) error {
	mods := sig.NewModifiers()
	token, err := p.t.RequireToken(true)
	if err != nil {
		return err
	}
	if token, err = p.parseModifiers(token, mods, true); err != nil {
		return err
	}
	typeParams, token, err := p.parseTypeParameters(token)
	if err != nil {
		return err
	}
	returnType, _, token, err := p.parseType(token, true, mods)
	if err != nil {
		return err
	}
	if !isIdent(token) {
		return p.errorf("invalid method name '%s'", token)
	}
	m := &sig.Method{
		Name:           token,
		Modifiers:      mods,
		ReturnType:     returnType,
		TypeParameters: typeParams,
	}
	if err := p.expect("(", true); err != nil {
		return err
	}
	if err := p.parseParameters(m); err != nil {
		return err
	}
	token, err = p.t.RequireToken(true)
	if err != nil {
		return err
	}
	if token == "throws" {
		var names []string
		if names, token, err = p.parseThrows(); err != nil {
			return err
		}
		m.SetThrowsNames(names)
	}
	if token == "default" {
		// Annotation element default: raw expression up to the semicolon.
		if m.AnnotationDefault, err = p.t.ScanUntilSemicolon(); err != nil {
			return err
		}
		cls.AddMethod(m)
		return nil
	}
	if token != ";" {
		return p.errorf("expected ';', found '%s'", token)
	}
	cls.AddMethod(m)
	return nil
}

func (p *fileParser) parseThrows() ([]string, string, error) {
	var names []string
	for {
		name, err := p.t.RequireToken(true)
		if err != nil {
			return nil, "", err
		}
		if !isQualifiedIdent(name) {
			return nil, "", p.errorf("invalid throws class name '%s'", name)
		}
		names = append(names, name)
		token, err := p.t.RequireToken(true)
		if err != nil {
			return nil, "", err
		}
		if token != "," {
			return names, token, nil
		}
	}
}

func (p *fileParser) parseParameters(m *sig.Method) error {
	index := 0
	token, err := p.t.RequireToken(true)
	if err != nil {
		return err
	}
	for {
		if token == ")" {
			return nil
		}

		pmods := sig.NewModifiers()
		hasDefault := false
		defaultValue := ""
		if token == "optional" {
			// "optional" records that a default exists without recording its
			// value.
			hasDefault = true
			defaultValue = sig.UnknownDefaultValue
			if token, err = p.t.RequireToken(true); err != nil {
				return err
			}
		}
		if token, err = p.parseModifiers(token, pmods, true); err != nil {
			return err
		}
		typ, varargs, next, err := p.parseType(token, true, pmods)
		if err != nil {
			return err
		}
		if varargs {
			pmods.Vararg = true
			m.Modifiers.Vararg = true
		}

		declared := ""
		token = next
		if token != ")" && token != "," && token != "=" {
			if !isIdent(token) {
				return p.errorf("expected parameter name or separator, found '%s'", token)
			}
			declared = token
			if token, err = p.t.RequireToken(true); err != nil {
				return err
			}
		}
		if token == "=" {
			if defaultValue, err = p.t.ScanParameterDefault(); err != nil {
				return err
			}
			hasDefault = true
			if token, err = p.t.RequireToken(true); err != nil {
				return err
			}
		}

		param := sig.NewParameter(index, declared, typ, pmods)
		param.HasDefault = hasDefault
		param.DefaultValue = defaultValue
		m.Parameters = append(m.Parameters, param)
		index++

		switch token {
		case ")":
			// Loop top handles it.
		case ",":
			if token, err = p.t.RequireToken(true); err != nil {
				return err
			}
		default:
			return p.errorf("expected ',' or ')', found '%s'", token)
		}
	}
}

func (p *fileParser) parseField(cls *sig.Class, isEnumConstant bool) error {
	mods := sig.NewModifiers()
	token, err := p.t.RequireToken(false)
	if err != nil {
		return err
	}
	if token, err = p.parseModifiers(token, mods, false); err != nil {
		return err
	}
	typ, _, token, err := p.parseType(token, false, mods)
	if err != nil {
		return err
	}
	if !isIdent(token) {
		return p.errorf("invalid field name '%s'", token)
	}
	f := &sig.Field{
		Name:           token,
		Modifiers:      mods,
		Type:           typ,
		IsEnumConstant: isEnumConstant,
	}
	if token, err = p.t.RequireToken(false); err != nil {
		return err
	}
	if token == "=" {
		line := p.t.Line()
		text, err := p.t.RequireToken(false)
		if err != nil {
			return err
		}
		if f.Value, err = parseConstantValue(p.file, line, typ, text); err != nil {
			return err
		}
		f.HasValue = true
		if token, err = p.t.RequireToken(false); err != nil {
			return err
		}
	}
	if token != ";" {
		return p.errorf("expected ';', found '%s'", token)
	}
	cls.AddField(f)
	return nil
}

func (p *fileParser) parseProperty(cls *sig.Class) error {
	mods := sig.NewModifiers()
	token, err := p.t.RequireToken(false)
	if err != nil {
		return err
	}
	if token, err = p.parseModifiers(token, mods, false); err != nil {
		return err
	}
	typ, _, token, err := p.parseType(token, false, mods)
	if err != nil {
		return err
	}
	if !isIdent(token) {
		return p.errorf("invalid property name '%s'", token)
	}
	if err := p.expect(";", false); err != nil {
		return err
	}
	cls.AddProperty(&sig.Property{Name: token, Modifiers: mods, Type: typ})
	return nil
}

// isIdent reports whether the token is identifier-shaped: a leading letter,
// underscore or dollar sign followed by letters, digits, underscores or
// dollar signs.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '_' || ch == '$' ||
			(ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') {
			continue
		}
		if ch >= '0' && ch <= '9' && i > 0 {
			continue
		}
		return false
	}
	return true
}

// isQualifiedIdent accepts dot-separated identifier segments.
func isQualifiedIdent(s string) bool {
	if s == "" {
		return false
	}
	for _, segment := range strings.Split(s, ".") {
		if !isIdent(segment) {
			return false
		}
	}
	return true
}
