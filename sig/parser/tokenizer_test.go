package parser

import (
	"reflect"
	"strings"
	"testing"
)

func tokenize(t *testing.T, input string, parenIsSep bool) []string {
	t.Helper()
	tok := NewTokenizer("test.txt", []byte(input))
	var tokens []string
	for {
		token, err := tok.NextToken(parenIsSep)
		if err != nil {
			t.Fatalf("NextToken(%q) error: %v", input, err)
		}
		if token == "" {
			return tokens
		}
		tokens = append(tokens, token)
	}
}

func TestNextToken(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		parenIsSep bool
		want       []string
	}{
		{
			name:  "keywords and separators",
			input: "package test.pkg { public final class Foo { } }",
			want:  []string{"package", "test.pkg", "{", "public", "final", "class", "Foo", "{", "}", "}"},
		},
		{
			name:       "parens as separators",
			input:      "foo(int, long)",
			parenIsSep: true,
			want:       []string{"foo", "(", "int", ",", "long", ")"},
		},
		{
			name:  "parens inside token",
			input: "foo(int)",
			want:  []string{"foo(int)"},
		},
		{
			name:  "generic type stays glued",
			input: "java.util.Map<java.lang.String, java.lang.Integer> map",
			want:  []string{"java.util.Map<java.lang.String, java.lang.Integer>", "map"},
		},
		{
			name:  "nested generics with wildcard",
			input: "java.util.List<? extends java.util.List<java.lang.Number>> xs",
			want:  []string{"java.util.List<? extends java.util.List<java.lang.Number>>", "xs"},
		},
		{
			name:  "leading angle bracket is a separator",
			input: "<T> foo",
			want:  []string{"<", "T", ">", "foo"},
		},
		{
			name:  "string literal is one token",
			input: `field = "hello, world { }";`,
			want:  []string{"field", "=", `"hello, world { }"`, ";"},
		},
		{
			name:  "string literal embedded in token",
			input: `@IntRange(from="a, b")`,
			want:  []string{`@IntRange(from="a, b")`},
		},
		{
			name:  "line comments are skipped",
			input: "foo // rest of line\nbar",
			want:  []string{"foo", "bar"},
		},
		{
			name:  "empty input",
			input: "   \n\t ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize(t, tt.input, tt.parenIsSep)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokens = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNextTokenErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"unterminated string", `"abc`, "unterminated string literal"},
		{"newline in string", "\"abc\ndef\"", "string literal contains line break"},
		{"unterminated generic", "java.util.List<java.lang.String", "unexpected end of file inside generic type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewTokenizer("test.txt", []byte(tt.input))
			_, err := tok.NextToken(false)
			if err == nil {
				t.Fatalf("NextToken(%q) succeeded, want error", tt.input)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("error = %q, want it to contain %q", err, tt.message)
			}
		})
	}
}

func TestLineTracking(t *testing.T) {
	tok := NewTokenizer("test.txt", []byte("one\ntwo\n\nthree"))
	for _, want := range []struct {
		token string
		line  int
	}{
		{"one", 1},
		{"two", 2},
		{"three", 4},
	} {
		token, err := tok.NextToken(false)
		if err != nil {
			t.Fatal(err)
		}
		if token != want.token {
			t.Fatalf("token = %q, want %q", token, want.token)
		}
		if tok.Line() != want.line {
			t.Errorf("after %q: line = %d, want %d", token, tok.Line(), want.line)
		}
	}
}

func TestRequireTokenAtEOF(t *testing.T) {
	tok := NewTokenizer("test.txt", []byte("  "))
	_, err := tok.RequireToken(false)
	if err == nil {
		t.Fatal("RequireToken at end of input succeeded, want error")
	}
	if !strings.Contains(err.Error(), "unexpected end of file") {
		t.Errorf("error = %q, want unexpected end of file", err)
	}
}

func TestScanBalanced(t *testing.T) {
	tok := NewTokenizer("test.txt", []byte(`(a, (b), "c)") rest`))
	span, err := tok.ScanBalanced('(', ')', 0)
	if err != nil {
		t.Fatal(err)
	}
	if span != `(a, (b), "c)")` {
		t.Errorf("span = %q", span)
	}
	next, err := tok.NextToken(false)
	if err != nil {
		t.Fatal(err)
	}
	if next != "rest" {
		t.Errorf("next token = %q, want rest", next)
	}
}

func TestScanParameterDefault(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		next  string
	}{
		{"simple value", "3, int y)", "3", ","},
		{"last parameter", "3)", "3", ")"},
		{"call with commas", "java.util.List.of(1, 2, 3))", "java.util.List.of(1, 2, 3)", ")"},
		{"array initializer", "{1, 2, 3})", "{1, 2, 3}", ")"},
		{"string with paren", `")", int y)`, `")"`, ","},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewTokenizer("test.txt", []byte(tt.input))
			got, err := tok.ScanParameterDefault()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("default = %q, want %q", got, tt.want)
			}
			next, err := tok.NextToken(true)
			if err != nil {
				t.Fatal(err)
			}
			if next != tt.next {
				t.Errorf("next token = %q, want %q", next, tt.next)
			}
		})
	}
}

func TestScanUntilSemicolon(t *testing.T) {
	// The ';' inside the parens must not terminate the expression.
	tok := NewTokenizer("test.txt", []byte(`java.lang.Math.max(1; 2) ; next`))
	got, err := tok.ScanUntilSemicolon()
	if err != nil {
		t.Fatal(err)
	}
	if got != "java.lang.Math.max(1; 2)" {
		t.Errorf("expression = %q", got)
	}
	next, err := tok.NextToken(false)
	if err != nil {
		t.Fatal(err)
	}
	if next != "next" {
		t.Errorf("next token = %q, want next", next)
	}
}
