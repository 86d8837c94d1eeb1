package gen

import (
	"bytes"
	"text/template"

	"github.com/pkg/errors"
	"golang.org/x/tools/imports"
)

// FileName is the name of the file generated into each package.
const FileName = "zz_comptype_gen.go"

var fileTemplate = template.Must(template.New(FileName).Parse(`// Code generated by comptype-gen. DO NOT EDIT.

package {{ .Package }}

import "{{ .Runtime }}"

func init() {
{{- range .Types }}
	comptype.Register[{{ . }}]()
{{- end }}
}
`))

// Render returns the formatted source of a file that registers the given
// types of package pkgName with the default catalog.
func Render(pkgName string, typeNames []string) ([]byte, error) {
	var buf bytes.Buffer

	err := fileTemplate.Execute(&buf, map[string]any{
		"Package": pkgName,
		"Runtime": RuntimePackage,
		"Types":   typeNames,
	})

	if err != nil {
		return nil, errors.Wrap(err, "execute template")
	}

	source, err := imports.Process(FileName, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})

	if err != nil {
		return nil, errors.Wrapf(err, "format generated code for package %s", pkgName)
	}

	return source, nil
}
