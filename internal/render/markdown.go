package render

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/dshills/nyota/internal/schema"
)

type markdownRenderer struct{}

var mdTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"bar":   Bar,
	"score": func(v float64) string { return fmt.Sprintf("%.2f", v) },
}).Parse(`# NYOTA Personality Report

**Instrument:** {{ .Input.Instrument }}
**Responses:** {{ .Input.ResponseCount }}{{ if .Input.ResponsesFile }} ({{ .Input.ResponsesFile }}){{ end }}

| Axis | Score | |
|---|---:|---|
{{ range .Scores }}| {{ .Axis }} | {{ score .Score }} | {{ bar .Score }} |
{{ end }}
**Mean:** {{ score .Summary.Mean }} | **Strongest:** {{ .Summary.Strongest }} | **Weakest:** {{ .Summary.Weakest }}

---
*{{ .Tool }} {{ .Version }}{{ if .Input.ResponsesHash }} | {{ .Input.ResponsesHash }}{{ end }}*
`))

func (r *markdownRenderer) Render(report *schema.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := mdTemplate.Execute(&buf, report); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.Bytes(), nil
}
