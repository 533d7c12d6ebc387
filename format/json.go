package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/apisig/sig"
)

type JSONEncoder struct {
	w   io.Writer
	api *sig.Codebase
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(api *sig.Codebase) error {
	e.api = api
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.buildCodebase(), "", "  ")
}

type jsonCodebase struct {
	Format   string        `json:"format"`
	Packages []jsonPackage `json:"packages"`
}

type jsonPackage struct {
	Name        string      `json:"name"`
	Annotations []string    `json:"annotations,omitempty"`
	Classes     []jsonClass `json:"classes,omitempty"`
}

type jsonClass struct {
	Name           string         `json:"name"`
	SimpleName     string         `json:"simpleName"`
	Kind           string         `json:"kind"`
	Modifiers      string         `json:"modifiers,omitempty"`
	Annotations    []string       `json:"annotations,omitempty"`
	TypeParameters string         `json:"typeParameters,omitempty"`
	SuperClass     string         `json:"superClass,omitempty"`
	Interfaces     []string       `json:"interfaces,omitempty"`
	Stub           bool           `json:"stub,omitempty"`
	Constructors   []jsonMethod   `json:"constructors,omitempty"`
	Methods        []jsonMethod   `json:"methods,omitempty"`
	Fields         []jsonField    `json:"fields,omitempty"`
	Properties     []jsonProperty `json:"properties,omitempty"`
	InnerClasses   []jsonClass    `json:"innerClasses,omitempty"`
}

type jsonMethod struct {
	Name              string          `json:"name"`
	Modifiers         string          `json:"modifiers,omitempty"`
	Annotations       []string        `json:"annotations,omitempty"`
	TypeParameters    string          `json:"typeParameters,omitempty"`
	ReturnType        string          `json:"returnType,omitempty"`
	Parameters        []jsonParameter `json:"parameters,omitempty"`
	Throws            []string        `json:"throws,omitempty"`
	AnnotationDefault string          `json:"annotationDefault,omitempty"`
}

type jsonParameter struct {
	Name         string   `json:"name"`
	Declared     bool     `json:"declared"`
	Type         string   `json:"type"`
	Modifiers    string   `json:"modifiers,omitempty"`
	Annotations  []string `json:"annotations,omitempty"`
	HasDefault   bool     `json:"hasDefault,omitempty"`
	DefaultValue string   `json:"defaultValue,omitempty"`
}

type jsonField struct {
	Name         string      `json:"name"`
	Type         string      `json:"type"`
	Modifiers    string      `json:"modifiers,omitempty"`
	Annotations  []string    `json:"annotations,omitempty"`
	EnumConstant bool        `json:"enumConstant,omitempty"`
	Value        interface{} `json:"value,omitempty"`
	HasValue     bool        `json:"hasValue,omitempty"`
}

type jsonProperty struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Modifiers   string   `json:"modifiers,omitempty"`
	Annotations []string `json:"annotations,omitempty"`
}

func (e *JSONEncoder) buildCodebase() jsonCodebase {
	data := jsonCodebase{Format: e.api.Format().Version()}
	for _, pkg := range e.api.Packages() {
		jp := jsonPackage{
			Name:        pkg.Name,
			Annotations: pkg.Modifiers.Annotations(),
		}
		for _, c := range pkg.Classes() {
			jp.Classes = append(jp.Classes, buildClass(c))
		}
		data.Packages = append(data.Packages, jp)
	}
	return data
}

func buildClass(c *sig.Class) jsonClass {
	data := jsonClass{
		Name:           c.QualifiedName,
		SimpleName:     c.SimpleName(),
		Kind:           string(c.Kind),
		Modifiers:      keywordModifiers(c.Modifiers),
		Annotations:    c.Modifiers.Annotations(),
		TypeParameters: c.TypeParameters.String(),
		Stub:           c.IsStub,
	}
	if super := c.SuperClass(); super != nil {
		data.SuperClass = super.QualifiedName
	}
	for _, itf := range c.Interfaces() {
		data.Interfaces = append(data.Interfaces, itf.QualifiedName)
	}
	for _, m := range c.Constructors() {
		data.Constructors = append(data.Constructors, buildMethod(m))
	}
	for _, m := range c.Methods() {
		data.Methods = append(data.Methods, buildMethod(m))
	}
	for _, f := range c.Fields() {
		data.Fields = append(data.Fields, jsonField{
			Name:         f.Name,
			Type:         f.Type.String(),
			Modifiers:    keywordModifiers(f.Modifiers),
			Annotations:  f.Modifiers.Annotations(),
			EnumConstant: f.IsEnumConstant,
			Value:        f.Value,
			HasValue:     f.HasValue,
		})
	}
	for _, p := range c.Properties() {
		data.Properties = append(data.Properties, jsonProperty{
			Name:        p.Name,
			Type:        p.Type.String(),
			Modifiers:   keywordModifiers(p.Modifiers),
			Annotations: p.Modifiers.Annotations(),
		})
	}
	for _, inner := range c.InnerClasses() {
		data.InnerClasses = append(data.InnerClasses, buildClass(inner))
	}
	return data
}

func buildMethod(m *sig.Method) jsonMethod {
	data := jsonMethod{
		Name:              m.Name,
		Modifiers:         keywordModifiers(m.Modifiers),
		Annotations:       m.Modifiers.Annotations(),
		TypeParameters:    m.TypeParameters.String(),
		Throws:            m.ThrowsNames(),
		AnnotationDefault: m.AnnotationDefault,
	}
	if !m.IsConstructor {
		data.ReturnType = m.ReturnType.String()
	}
	for _, p := range m.Parameters {
		_, declared := p.PublicName()
		data.Parameters = append(data.Parameters, jsonParameter{
			Name:         p.Name,
			Declared:     declared,
			Type:         p.Type.String(),
			Modifiers:    keywordModifiers(p.Modifiers),
			Annotations:  p.Modifiers.Annotations(),
			HasDefault:   p.HasDefault,
			DefaultValue: p.DefaultValue,
		})
	}
	return data
}

// keywordModifiers renders visibility and keyword flags without annotations,
// which get their own JSON field.
func keywordModifiers(m *sig.Modifiers) string {
	return m.WithoutAnnotations().String()
}
