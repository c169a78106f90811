package security

import (
	"strings"
	"testing"
)

func TestSanitize_StripsScript(t *testing.T) {
	t.Parallel()

	s := NewContentSanitizer()

	got := s.Sanitize(`hello <script>alert("x")</script>world`)
	if strings.Contains(got, "<script>") || strings.Contains(got, "alert") {
		t.Fatalf("script survived sanitization: %q", got)
	}
	if !strings.Contains(got, "hello") || !strings.Contains(got, "world") {
		t.Fatalf("text content lost: %q", got)
	}
}

func TestSanitize_StripsEventAttributes(t *testing.T) {
	t.Parallel()

	s := NewContentSanitizer()

	got := s.Sanitize(`<p onclick="steal()">note</p>`)
	if strings.Contains(got, "onclick") {
		t.Fatalf("event attribute survived: %q", got)
	}
	if !strings.Contains(got, "note") {
		t.Fatalf("text content lost: %q", got)
	}
}

func TestSanitize_KeepsFormattingTags(t *testing.T) {
	t.Parallel()

	s := NewContentSanitizer()

	in := `<p>practice <strong>scales</strong> and <em>arpeggios</em></p>`
	got := s.Sanitize(in)
	if got != in {
		t.Fatalf("formatting tags altered: got %q want %q", got, in)
	}
}

func TestSanitize_PlainMarkdownUntouched(t *testing.T) {
	t.Parallel()

	s := NewContentSanitizer()

	in := "# Today\n\n- practice scales\n- *rest*"
	if got := s.Sanitize(in); got != in {
		t.Fatalf("plain markdown altered: got %q want %q", got, in)
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	t.Parallel()

	s := NewContentSanitizer()

	in := `<p>note</p><iframe src="https://evil.example"></iframe>`
	once := s.Sanitize(in)
	twice := s.Sanitize(once)
	if once != twice {
		t.Fatalf("not idempotent: %q vs %q", once, twice)
	}
}
