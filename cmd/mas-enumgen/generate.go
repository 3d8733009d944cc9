package main

import (
	"fmt"
	"strings"
	"text/template"
)

var funcMap = template.FuncMap{
	"concat":     func(a, b string) string { return a + b },
	"firstLower": firstLower,
	"quote":      func(s string) string { return fmt.Sprintf("%q", s) },
}

var enumTemplate = template.Must(template.New("enums").Funcs(funcMap).Parse(enumsTmpl))

const enumsTmpl = `// Code generated by mas-enumgen; DO NOT EDIT.

package {{.Package}}

import "github.com/mas-protocol/mas-go/pkg/convert"

{{range .Enums -}}
{{- $enum := . -}}
// {{.Name}} {{firstLower .Description}}
type {{.Name}} string

const (
{{- range .Values}}
	{{concat $enum.Name .Name}} {{$enum.Name}} = {{quote .Literal}}
{{- end}}
)

var {{.Table}} = convert.NewEnum({{quote .Name}},
{{- range .Values}}
	{{concat $enum.Name .Name}},
{{- end}}
)

{{end -}}
`

// Generate renders the Go source for an enum definition file. The
// output is unformatted; the caller runs it through goimports.
func Generate(file *RawEnumFile) (string, error) {
	var b strings.Builder
	if err := enumTemplate.Execute(&b, file); err != nil {
		return "", err
	}
	return b.String(), nil
}

func firstLower(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
