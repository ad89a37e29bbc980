package bml

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/shapestone/shape-bml/pkg/element"
)

// TestParse verifies the Parse function
func TestParse(t *testing.T) {
	doc, err := Parse("name: Alice\nage: 30")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if doc.Len() != 2 {
		t.Fatalf("Parse() returned %d entries, want 2", doc.Len())
	}
	name, ok := doc.Get("name")
	if !ok {
		t.Fatal("Missing 'name' entry")
	}
	if s, ok := name.(element.Scalar); !ok || s.Text() != "Alice" {
		t.Errorf("name = %v, want Alice", name)
	}
}

// TestParseLineEndings verifies that Windows line endings parse like Unix ones
func TestParseLineEndings(t *testing.T) {
	unix, err := Parse("a: 1\nb:\n  - x\n")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	windows, err := Parse("a: 1\r\nb:\r\n  - x\r\n")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if !element.Equal(unix, windows) {
		t.Errorf("documents differ:\n%s\n%s", unix, windows)
	}
}

// TestParseReader verifies the ParseReader function
func TestParseReader(t *testing.T) {
	doc, err := ParseReader(strings.NewReader("name: Bob\ncity: NYC"))
	if err != nil {
		t.Fatalf("ParseReader() error: %v", err)
	}

	city, ok := doc.Get("city")
	if !ok {
		t.Fatal("Missing 'city' entry")
	}
	if s, ok := city.(element.Scalar); !ok || s.Text() != "NYC" {
		t.Errorf("city = %v, want NYC", city)
	}
}

// TestParseReaderFailure verifies that read failures are not syntax errors
func TestParseReaderFailure(t *testing.T) {
	boom := errors.New("boom")
	_, err := ParseReader(iotest.ErrReader(boom))
	if !errors.Is(err, boom) {
		t.Fatalf("ParseReader() error = %v, want %v", err, boom)
	}
	if errors.Is(err, ErrInvalidFormat) {
		t.Error("read failure reported as invalid format")
	}
}

// TestParseError verifies that syntax errors surface with their position
func TestParseError(t *testing.T) {
	_, err := Parse("a: 1\nb: {\"x\" \"y\"}")
	if err == nil {
		t.Fatal("Parse() expected error, got nil")
	}
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Parse() error = %v, want ErrInvalidFormat", err)
	}

	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("Parse() returned %T, want *FormatError", err)
	}
	if fe.Reason != MissingSeparator || fe.Line != 1 || fe.Char != 8 {
		t.Errorf("got %s at %d:%d, want MissingSeparator at 1:8", fe.Reason, fe.Line, fe.Char)
	}
}

// TestParseValue verifies single value parsing
func TestParseValue(t *testing.T) {
	tests := []struct {
		input string
		want  element.Kind
	}{
		{`{"a": "1"}`, element.KindMapping},
		{`["a", ~]`, element.KindSequence},
		{`"quoted"`, element.KindScalar},
		{`bare words`, element.KindScalar},
		{`~`, element.KindEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := ParseValue(tt.input)
			if err != nil {
				t.Fatalf("ParseValue() error: %v", err)
			}
			if v.Kind() != tt.want {
				t.Errorf("ParseValue() kind = %s, want %s", v.Kind(), tt.want)
			}
		})
	}
}

// TestValidate verifies Validate accepts and rejects documents like Parse
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", false},
		{"whitespace", "  \n\t\n", false},
		{"form feed", "\f", true},
		{"vertical tab", "\v", true},
		{"no-break space", "\u00a0", true},
		{"simple", "a: 1", false},
		{"nested", "a:\n  b:\n    - c", false},
		{"duplicate key", "a: 1\na: 2", true},
		{"not a key line", "just text", true},
		{"unterminated", `a: ["x"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestValidateValue verifies single value validation
func TestValidateValue(t *testing.T) {
	if err := ValidateValue(`{"a": ["b"]}`); err != nil {
		t.Errorf("ValidateValue() error: %v", err)
	}
	if err := ValidateValue(`{"a" ["b"]}`); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("ValidateValue() error = %v, want ErrInvalidFormat", err)
	}
}

// TestSplitLines verifies line splitting
func TestSplitLines(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\r\nb", []string{"a", "b"}},
		{"a\n\nb\n", []string{"a", "", "b"}},
		{"\n", []string{""}},
	}

	for _, tt := range tests {
		got := SplitLines(tt.input)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
			t.Errorf("SplitLines(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// TestConcurrentParse verifies parsing from multiple goroutines
func TestConcurrentParse(t *testing.T) {
	const doc = "a:\n  - {\"b\": [\"c\", ~]}\n  - d: e"
	want, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	done := make(chan *element.Mapping)
	for i := 0; i < 8; i++ {
		go func() {
			got, _ := Parse(doc)
			done <- got
		}()
	}
	for i := 0; i < 8; i++ {
		if got := <-done; !element.Equal(got, want) {
			t.Errorf("concurrent result differs: %s", got)
		}
	}
}

// FuzzParse tests the Parse function with random inputs
func FuzzParse(f *testing.F) {
	f.Add("key: value")
	f.Add("name: test\nage: 30")
	f.Add("items:\n  - a\n  - b")
	f.Add(`inline: {"key": ["value", ~]}`)
	f.Add("list:\n  - a: 1\n    b: [\"x\"]")
	f.Add(`k: "unterminated`)
	f.Add("\\")

	f.Fuzz(func(t *testing.T, data string) {
		// Parse must not panic, and every failure must be positioned
		_, err := Parse(data)
		if err == nil {
			return
		}
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Fatalf("Parse() returned %T, want *FormatError", err)
		}
		if fe.Line < 0 || fe.Char < 0 {
			t.Errorf("negative position %d:%d", fe.Line, fe.Char)
		}
	})
}
