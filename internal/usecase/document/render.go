package document

import (
	"bytes"
	"strings"
	"text/template"

	domaindoc "github.com/PerfectPlumbing/plumbing-ops/internal/domain/document"
	"github.com/PerfectPlumbing/plumbing-ops/internal/models"
)

const snapshotTemplate = `PERFECT PLUMBING - {{ .Type }}

Charge To: {{ .Doc.ChargeTo }}
Job Address: {{ .Doc.JobAddress }}
{{- if .Doc.DescriptionOfWork }}
Description of Work: {{ .Doc.DescriptionOfWork }}
{{- end }}
{{- if .Materials }}

Materials:
{{- range .Materials }}
  {{ .Quantity }}x {{ .ItemName }} @ {{ printf "%.2f" .UnitPrice }} = {{ printf "%.2f" .LineTotal }}
{{- end }}
{{- end }}

Labour / Flat Rate: {{ printf "%.2f" .Doc.LabourCharge }}
Total: {{ printf "%.2f" .Doc.Total }}

{{ .Doc.DisclaimerText }}
`

var snapshotTmpl = template.Must(template.New("snapshot").Parse(snapshotTemplate))

// Render produces the plain-text snapshot stored alongside a document.
func Render(doc *models.Document, materials []domaindoc.Material) ([]byte, error) {
	data := struct {
		Type      string
		Doc       *models.Document
		Materials []domaindoc.Material
	}{
		Type:      strings.ToUpper(doc.DocumentType),
		Doc:       doc,
		Materials: materials,
	}

	var buf bytes.Buffer
	if err := snapshotTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
