package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	old := Version
	Version = "v0.3.0"
	t.Cleanup(func() { Version = old })

	got := Template()
	if !strings.HasPrefix(got, "{{.Name}} v0.3.0 (commit ") {
		t.Errorf("Template() = %q", got)
	}
	if !strings.HasSuffix(got, ")\n") {
		t.Errorf("Template() should end with a newline: %q", got)
	}
}

func TestString(t *testing.T) {
	for _, want := range []string{"version: ", "commit: ", "built: "} {
		if !strings.Contains(String(), want) {
			t.Errorf("String() missing %q", want)
		}
	}
}
