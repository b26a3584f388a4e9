package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/spendpad/spendpad/internal/expense"
)

// maxListRows caps the record rows rendered below the form.
const maxListRows = 10

// View renders the page (Bubble Tea interface).
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		HeaderStyle.Render("SPENDPAD"),
		"",
		RenderStatsSummary(m.store.All(), m.cfg.Currency, time.Now()),
		"",
		m.renderForm(),
		"",
		m.renderList(),
	}

	if status := m.renderStatus(); status != "" {
		sections = append(sections, "", status)
	}

	sections = append(sections, "",
		SubtleStyle.Render("tab: next field • enter: add • d: delete selected • q: quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// RenderStatsSummary renders the three aggregate stat cards for the given
// records: total spend, spend in ref's calendar month, and top category.
func RenderStatsSummary(records []expense.Record, currency string, ref time.Time) string {
	topLabel := "—"
	if top, ok := expense.TopCategory(records); ok {
		topLabel = top.String()
	}

	cards := []string{
		renderCard("Total", FormatAmount(currency, expense.Total(records))),
		renderCard("This Month", FormatAmount(currency, expense.MonthlyTotal(records, ref))),
		renderCard("Top Category", topLabel),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func renderCard(title, value string) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(title),
		cardValueStyle.Render(value),
	)
	return cardStyle.Render(content)
}

func (m Model) renderForm() string {
	var b strings.Builder

	b.WriteString(m.fieldLabel("Description", fieldDescription))
	b.WriteString(m.description.View())
	b.WriteString("\n")

	b.WriteString(m.fieldLabel("Amount     ", fieldAmount))
	b.WriteString(m.amount.View())
	b.WriteString("\n")

	b.WriteString(m.fieldLabel("Category   ", fieldCategory))
	b.WriteString(m.renderCategoryPicker())

	return b.String()
}

func (m Model) fieldLabel(name string, f focusField) string {
	if m.focus == f {
		return focusedLabelStyle.Render("▸ "+name) + " "
	}
	return LabelStyle.Render("  "+name) + " "
}

func (m Model) renderCategoryPicker() string {
	current := m.categories[m.categoryIdx].String()
	picker := fmt.Sprintf("◂ %s ▸ (%d/%d)", current, m.categoryIdx+1, len(m.categories))
	if m.focus == fieldCategory {
		return categoryStyle.Render(picker)
	}
	return SubtleStyle.Render(picker)
}

func (m Model) renderList() string {
	records := m.store.All()
	if len(records) == 0 {
		return SubtleStyle.Render("No expenses yet. Fill in the form above and press enter.")
	}

	from, to := listWindow(len(records), m.selected, maxListRows)

	var rows []string
	for i := from; i < to; i++ {
		rows = append(rows, m.renderRow(records[i], m.focus == fieldList && i == m.selected))
	}

	if len(records) > to-from {
		rows = append(rows, SubtleStyle.Render(
			fmt.Sprintf("  … %d of %d shown", to-from, len(records))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderRow(rec expense.Record, selected bool) string {
	marker := "  "
	style := rowStyle
	if selected {
		marker = "▸ "
		style = selectedRowStyle
	}

	line := fmt.Sprintf("%s%s  %-13s %10s  %s",
		marker,
		rec.Date.String(),
		rec.Category,
		FormatAmount(m.cfg.Currency, rec.Amount),
		rec.Description,
	)
	return style.Render(line)
}

func (m Model) renderStatus() string {
	switch m.statusKind {
	case statusError:
		return ErrorStyle.Render(m.status)
	case statusSuccess:
		return OKStyle.Render(m.status)
	case statusNone:
	}
	return ""
}

// listWindow computes the visible [from, to) slice of the record list so the
// selection stays in view.
func listWindow(total, selected, size int) (int, int) {
	if total <= size {
		return 0, total
	}
	from := selected - size/2
	if from < 0 {
		from = 0
	}
	if from+size > total {
		from = total - size
	}
	return from, from + size
}
