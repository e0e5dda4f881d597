package usecase

import (
	"bytes"
	"embed"
	htmltemplate "html/template"
	"regexp"
	"strings"
	texttemplate "text/template"
)

const defaultBrand = "Nuvanta Nurse Management"

//go:embed templates/*
var templateFS embed.FS

var tagPattern = regexp.MustCompile(`<[^>]*>`)

func parseTemplates() (*htmltemplate.Template, *texttemplate.Template, error) {
	funcs := htmltemplate.FuncMap{"lines": lines}

	html, err := htmltemplate.New("email").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, nil, err
	}
	text, err := texttemplate.New("email").ParseFS(templateFS, "templates/*.txt")
	if err != nil {
		return nil, nil, err
	}
	return html, text, nil
}

// lines escapes s and keeps its line breaks.
func lines(s string) htmltemplate.HTML {
	escaped := htmltemplate.HTMLEscapeString(strings.TrimSpace(s))
	return htmltemplate.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

type layoutData struct {
	Brand   string
	Content htmltemplate.HTML
	Footer  string
}

// render executes name.html and name.txt with data and wraps the HTML in the layout.
func (uc *implUseCase) render(name string, data any) (html, text string, err error) {
	var content bytes.Buffer
	if err := uc.html.ExecuteTemplate(&content, name+".html", data); err != nil {
		return "", "", err
	}
	html, err = uc.layout(htmltemplate.HTML(content.String()))
	if err != nil {
		return "", "", err
	}

	var plain bytes.Buffer
	if err := uc.text.ExecuteTemplate(&plain, name+".txt", data); err != nil {
		return "", "", err
	}
	return html, strings.TrimSpace(plain.String()) + "\n\n" + uc.footer(), nil
}

func (uc *implUseCase) layout(content htmltemplate.HTML) (string, error) {
	var buf bytes.Buffer
	err := uc.html.ExecuteTemplate(&buf, "layout.html", layoutData{
		Brand:   uc.cfg.Brand,
		Content: content,
		Footer:  uc.footer(),
	})
	return buf.String(), err
}

func (uc *implUseCase) footer() string {
	if uc.cfg.Footer != "" {
		return uc.cfg.Footer
	}
	return defaultFooter
}

// stripTags is the plain-text fallback for caller-supplied HTML.
func stripTags(html string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(html, ""))
}
