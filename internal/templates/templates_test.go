package templates

import (
	"testing"
)

func TestLoadParsesEveryPage(t *testing.T) {
	tmpl, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	for _, name := range []string{"header", "footer", "home.tmpl", "writing.tmpl", "library.tmpl", "evaluate.tmpl", "games.tmpl", "history.tmpl"} {
		if tmpl.Lookup(name) == nil {
			t.Errorf("template %q not found", name)
		}
	}
}
