package scaffold

import (
	"embed"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded Jenkinsfile templates for consumers that
// want to extend or replace them.
func TemplatesFS() embed.FS {
	return embeddedTemplates
}
