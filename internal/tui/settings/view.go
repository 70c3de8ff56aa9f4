package settings

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/folio/internal/domain/theme"
)

// title capitalizes s. Casers keep state, so each call gets its own.
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Theme Settings"))
	b.WriteString("\n")

	for i := 0; i < int(rowCount); i++ {
		line := m.renderRow(Row(i))
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render(line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
		if Row(i) == RowStyle {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(itemStyle.Render(mutedStyle.Render("Presets: " + PresetLine())))
	b.WriteString("\n")

	if m.editing {
		b.WriteString("\n")
		b.WriteString(itemStyle.Render(m.input.View()))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(itemStyle.Render(errorStyle.Render("Error: " + m.errMsg)))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString("\n")
		b.WriteString(itemStyle.Render(statusStyle.Render(m.status)))
		b.WriteString("\n")
	}

	var helpView string
	if m.editing {
		helpView = m.help.View(editingKeys{m.keys})
	} else {
		helpView = m.help.View(m.keys)
	}
	b.WriteString(footerStyle.Render(helpView))

	return b.String()
}

func (m Model) renderRow(row Row) string {
	label := labelStyle.Render(row.label())
	cfg := m.session.Theme()
	bg := m.session.Background()

	if role, ok := row.role(); ok {
		hex := theme.Color(cfg, role)
		line := fmt.Sprintf("%s %s %s", label, swatch(hex), hex)
		if m.slots != nil {
			if slot, ok := m.slots.Get(string(role)); ok {
				line += mutedStyle.Render("  rgb(" + slot + ")")
			}
		}
		return line
	}

	switch row {
	case RowStyle:
		return fmt.Sprintf("%s ‹ %s ›", label, title(string(cfg.Style)))
	case RowBackgroundType:
		return fmt.Sprintf("%s ‹ %s ›", label, title(string(bg.Type)))
	case RowBackgroundValue:
		value := bg.Value
		if value == "" {
			value = mutedStyle.Render("(none)")
		}
		return label + " " + value
	case RowOverlayOpacity:
		return fmt.Sprintf("%s %s %s", label, opacityBar(bg.OverlayOpacity), strconv.FormatFloat(bg.OverlayOpacity, 'f', 2, 64))
	default:
		return label
	}
}

// PresetLine lists the presets with their number keys, e.g. "1 Cyberpunk".
func PresetLine() string {
	names := theme.PresetNames()
	parts := make([]string, 0, len(names))
	for i, name := range names {
		parts = append(parts, fmt.Sprintf("%d %s", i+1, title(name)))
	}
	return strings.Join(parts, "  ")
}

func opacityBar(opacity float64) string {
	const width = 10
	filled := int(opacity*width + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
