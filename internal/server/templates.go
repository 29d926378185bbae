package server

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.tmpl assets/*
var embedded embed.FS

var funcs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

func parseTemplates() (*template.Template, error) {
	t, err := template.New("").Funcs(funcs).ParseFS(embedded, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}
