package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/folio/internal/domain/content"
	"github.com/alexisbeaulieu97/folio/internal/domain/theme"
	"github.com/alexisbeaulieu97/folio/internal/form"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKeys(msg)
		}
		return m.handleKeys(msg)
	}

	return m, nil
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.session.Cancel(m.ctx)
		m.done = true
		m.status = "changes discarded"
		return m, tea.Quit

	case key.Matches(msg, m.keys.Apply):
		if err := m.session.Apply(m.ctx); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.done = true
		m.status = "settings applied"
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < int(rowCount)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Preset):
		index, _ := strconv.Atoi(msg.String())
		names := theme.PresetNames()
		if index >= 1 && index <= len(names) {
			m.report(m.session.ApplyPreset(names[index-1]), "preset "+names[index-1])
		}

	case key.Matches(msg, m.keys.Increase):
		m.step(1)

	case key.Matches(msg, m.keys.Decrease):
		m.step(-1)

	case key.Matches(msg, m.keys.Edit):
		return m.startEdit()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Abort):
		m.editing = false
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		value := strings.TrimSpace(m.input.Value())
		if err := m.commitField(Row(m.cursor), value); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.editing = false
		m.input.Blur()
		m.errMsg = ""
		m.status = Row(m.cursor).label() + " updated"
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) startEdit() (tea.Model, tea.Cmd) {
	row := Row(m.cursor)
	var current string
	switch {
	case row <= RowSurface:
		role, _ := row.role()
		current = theme.Color(m.session.Theme(), role)
	case row == RowBackgroundValue:
		current = m.session.Background().Value
	case row == RowOverlayOpacity:
		current = strconv.FormatFloat(m.session.Background().OverlayOpacity, 'f', -1, 64)
	default:
		// Choice rows cycle with left/right instead.
		m.step(1)
		return m, nil
	}

	m.editing = true
	m.errMsg = ""
	m.input.SetValue(current)
	m.input.CursorEnd()
	cmd := m.input.Focus()
	return m, cmd
}

func (m Model) commitField(row Row, value string) error {
	switch {
	case row <= RowSurface:
		if err := form.Validator().Var(value, "required,hexcolor"); err != nil {
			return fmt.Errorf("%q is not a hex color", value)
		}
		role, _ := row.role()
		return m.session.SetColor(role, strings.ToUpper(value))
	case row == RowBackgroundValue:
		if err := form.Validator().Var(value, "asset_url"); err != nil {
			return fmt.Errorf("%q is not a usable image url", value)
		}
		return m.session.SetBackgroundValue(value)
	case row == RowOverlayOpacity:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%q is not a number", value)
		}
		return m.session.SetOverlayOpacity(f)
	default:
		return nil
	}
}

// step moves choice rows through their options and nudges the opacity.
func (m *Model) step(dir int) {
	switch Row(m.cursor) {
	case RowStyle:
		styles := content.ThemeStyles()
		next := styles[cycle(indexOf(styles, m.session.Theme().Style), dir, len(styles))]
		m.report(m.session.SetStyle(next), "style "+string(next))

	case RowBackgroundType:
		next := content.BackgroundDefault
		if m.session.Background().Type == content.BackgroundDefault {
			next = content.BackgroundImage
		}
		m.report(m.session.SetBackgroundType(next), "background "+string(next))

	case RowOverlayOpacity:
		opacity := m.session.Background().OverlayOpacity + float64(dir)*opacityStep
		// Snap to multiples of opacityStep.
		opacity = float64(int(opacity/opacityStep+0.5*sign(opacity))) * opacityStep
		m.report(m.session.SetOverlayOpacity(opacity), "")
	}
}

func (m *Model) report(err error, status string) {
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	if status != "" {
		m.status = status
	}
}

func indexOf(styles []content.ThemeStyle, s content.ThemeStyle) int {
	for i, candidate := range styles {
		if candidate == s {
			return i
		}
	}
	return 0
}

func cycle(i, dir, n int) int {
	return ((i+dir)%n + n) % n
}

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}
