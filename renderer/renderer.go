// Package renderer turns billing entities into markdown reports.
//
// Each report pairs a view struct (pre-formatted strings, json-taggable)
// with a text/template kept under templates/. The view constructors do all
// the formatting so the templates stay dumb.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// RenderDocument renders an invoice or quote view to a markdown string.
func RenderDocument(v *DocumentView) string {
	return renderTemplate("document", "templates/document.md", nil, v)
}

// RenderClientList renders the client directory to a markdown string.
func RenderClientList(v *ClientListView) string {
	return renderTemplate("clients", "templates/clients.md", nil, v)
}

// RenderDocumentList renders a list of invoices or quotes to a markdown string.
func RenderDocumentList(v *DocumentListView) string {
	return renderTemplate("documents", "templates/documents.md", nil, v)
}

// RenderSummary renders the dashboard summary to a markdown string.
func RenderSummary(v *SummaryView) string {
	partials := map[string]string{
		"summary_months": "templates/summary_months.md",
	}
	return renderTemplate("summary", "templates/summary.md", partials, v)
}

// renderTemplate is a generic utility to render a main template that depends
// on several partials. Errors come back as the rendered string: a broken
// template is a bug, and the message is more useful on screen than swallowed.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
