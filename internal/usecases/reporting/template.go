package reporting

import (
	"fmt"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/boraedu/bora-hub-api/internal/domain"
)

var scopeTitles = map[domain.ReportScope]string{
	domain.ScopeSales:        "Vendas",
	domain.ScopeCommissions:  "Comissões",
	domain.ScopeTickets:      "Chamados",
	domain.ScopeTasks:        "Tarefas",
	domain.ScopeOKRs:         "OKRs",
	domain.ScopeContent:      "Conteúdo",
	domain.ScopeEvents:       "Eventos",
	domain.ScopeMentorships:  "Mentorias",
	domain.ScopePDIs:         "PDIs",
	domain.ScopeSponsorships: "Patrocínios",
}

const markdownTemplate = `# {{ .Title }}

Período: {{ date .Period.Start }} a {{ date .Period.End }}
{{ range .Scopes }}
## {{ scopeTitle .Scope }}
{{ if .Error }}
_Dados indisponíveis: {{ .Error }}_
{{ else }}
{{ range $line := lines .Data }}- {{ $line }}
{{ end }}{{ end }}{{ end }}`

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"date":       formatDate,
	"scopeTitle": scopeTitle,
	"lines":      dataLines,
}).Parse(markdownTemplate))

// RenderMarkdown monta o relatório sem IA, listando os agregados de cada escopo
func RenderMarkdown(data *domain.ReportData) (string, error) {
	var out strings.Builder
	if err := reportTemplate.Execute(&out, data); err != nil {
		return "", err
	}
	return out.String(), nil
}

func formatDate(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.Format("02/01/2006")
}

func scopeTitle(scope domain.ReportScope) string {
	if title, ok := scopeTitles[scope]; ok {
		return title
	}
	return string(scope)
}

// dataLines achata os agregados em linhas "chave: valor" em ordem alfabética
func dataLines(data map[string]any) []string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("%s: %s", strings.ReplaceAll(key, "_", " "), formatValue(data[key])))
	}
	return lines
}

func formatValue(value any) string {
	switch v := value.(type) {
	case map[string]int:
		return formatCounts(v)
	case map[string]string:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			parts = append(parts, key+" "+v[key])
		}
		return joinOrDash(parts)
	case []map[string]any:
		return fmt.Sprintf("%d itens", len(v))
	case float64:
		return fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprint(value)
}

func formatCounts(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s %d", key, counts[key]))
	}
	return joinOrDash(parts)
}

func joinOrDash(parts []string) string {
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}
