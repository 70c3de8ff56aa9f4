// Package settings is the terminal front end of the theme and background
// live-preview session.
package settings

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	appsettings "github.com/alexisbeaulieu97/folio/internal/application/settings"
	"github.com/alexisbeaulieu97/folio/internal/domain/theme"
)

// Row identifies one editable line of the panel.
type Row int

const (
	RowPrimary Row = iota
	RowSecondary
	RowAccent
	RowBackground
	RowSurface
	RowStyle
	RowBackgroundType
	RowBackgroundValue
	RowOverlayOpacity
	rowCount
)

// opacityStep is the change applied by Increase/Decrease on the opacity row.
const opacityStep = 0.05

// SlotReader exposes the presentation slots the session previews into.
type SlotReader interface {
	Get(name string) (string, bool)
}

// Model is the settings panel.
type Model struct {
	ctx     context.Context
	session *appsettings.Session
	slots   SlotReader

	keys  KeyMap
	help  help.Model
	input textinput.Model

	cursor  int
	editing bool
	status  string
	errMsg  string
	done    bool

	width  int
	height int
}

// NewModel creates a panel driving session. Slots may be nil, in which case
// the preview column is omitted.
func NewModel(ctx context.Context, session *appsettings.Session, slots SlotReader) Model {
	if ctx == nil {
		ctx = context.Background()
	}

	input := textinput.New()
	input.CharLimit = 2048
	input.Prompt = "> "

	return Model{
		ctx:     ctx,
		session: session,
		slots:   slots,
		keys:    DefaultKeyMap,
		help:    help.New(),
		input:   input,
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Session returns the driven session.
func (m Model) Session() *appsettings.Session {
	return m.session
}

// Cursor returns the selected row.
func (m Model) Cursor() Row {
	return Row(m.cursor)
}

// Editing reports whether a text field is open.
func (m Model) Editing() bool {
	return m.editing
}

// Err returns the last error shown in the panel.
func (m Model) Err() string {
	return m.errMsg
}

// Done reports whether the session was applied or cancelled.
func (m Model) Done() bool {
	return m.done
}

func (r Row) role() (theme.Role, bool) {
	if r < RowPrimary || r > RowSurface {
		return "", false
	}
	return theme.Roles()[r], true
}

func (r Row) label() string {
	if role, ok := r.role(); ok {
		return string(role)
	}
	switch r {
	case RowStyle:
		return "style"
	case RowBackgroundType:
		return "background type"
	case RowBackgroundValue:
		return "image url"
	case RowOverlayOpacity:
		return "overlay opacity"
	default:
		return ""
	}
}
