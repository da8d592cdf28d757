package templates

import (
	"embed"
	"fmt"
	"html/template"
	"time"
)

//go:embed base.tmpl pages/*.tmpl
var files embed.FS

// Load parses the embedded page templates with the shared helper functions.
// Pages are looked up by file name, e.g. "home.tmpl".
func Load() (*template.Template, error) {
	funcMap := template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("2006-01-02 15:04")
		},
		"add": func(a, b int) int {
			return a + b
		},
		"percent": func(score, max int) int {
			if max == 0 {
				return 0
			}
			return score * 100 / max
		},
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(files, "base.tmpl", "pages/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}
