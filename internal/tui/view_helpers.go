package tui

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/lbertolazzi/go-taxonomy-admin/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

// renderFieldTable renders fields as a bordered table. When cursor is >= 0
// the matching row is marked as selected.
func renderFieldTable(fields []models.Field, cursor int) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"", "#", "Name", "Type", "Mandatory"})

	for i, f := range fields {
		marker := " "
		if i == cursor {
			marker = ">"
		}
		t.AppendRow(table.Row{marker, i + 1, f.Name(), f.Type().DisplayName(), yesNo(f.Mandatory())})
	}

	if len(fields) == 0 {
		return "(no fields)"
	}
	return t.Render()
}

// renderCategoryTable renders the taxonomy as a bordered table with the
// number of specific fields per category.
func renderCategoryTable(categories []*models.Category, cursor int) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"", "#", "Category", "Specific fields"})

	for i, c := range categories {
		marker := " "
		if i == cursor {
			marker = ">"
		}
		t.AppendRow(table.Row{marker, i + 1, c.Name(), len(c.SpecificFields())})
	}

	if len(categories) == 0 {
		return "(no categories)"
	}
	return t.Render()
}

// renderFormTable renders the complete form of a category: base and common
// fields followed by the category's own specific fields, each labeled with
// its kind.
func renderFormTable(fields []models.Field) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Name", "Kind", "Type", "Mandatory"})

	for i, f := range fields {
		t.AppendRow(table.Row{i + 1, f.Name(), f.Kind().Label(), f.Type().DisplayName(), yesNo(f.Mandatory())})
	}

	if len(fields) == 0 {
		return "(no fields)"
	}
	return t.Render()
}

func commonFieldsAsFields(fields []*models.CommonField) []models.Field {
	out := make([]models.Field, len(fields))
	for i, f := range fields {
		out[i] = f
	}
	return out
}

func baseFieldsAsFields(fields []*models.BaseField) []models.Field {
	out := make([]models.Field, len(fields))
	for i, f := range fields {
		out[i] = f
	}
	return out
}

func specificFieldsAsFields(fields []*models.SpecificField) []models.Field {
	out := make([]models.Field, len(fields))
	for i, f := range fields {
		out[i] = f
	}
	return out
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// fitText truncates v to at most max characters, counting runes so multibyte
// names are never cut mid-character.
func fitText(v string, max int) string {
	if max <= 0 {
		return v
	}
	runes := []rune(v)
	if len(runes) <= max {
		return v
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
