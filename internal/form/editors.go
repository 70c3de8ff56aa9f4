package form

import (
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/folio/internal/domain/content"
)

// Editor edits one singleton region of the document through flat string
// values. Collection entries are edited with ProjectSchema and
// EducationSchema directly.
type Editor interface {
	Name() string
	Title() string
	Fields() []Descriptor
	Current(doc content.Document) map[string]string
	Mutation(doc content.Document, values map[string]string) (content.Mutation, error)
}

type regionEditor[T any] struct {
	name   string
	schema Schema[T]
	get    func(content.Document) T
	build  func(T) content.Mutation
}

func (e regionEditor[T]) Name() string { return e.name }

func (e regionEditor[T]) Title() string { return e.schema.Title }

func (e regionEditor[T]) Fields() []Descriptor { return e.schema.Descriptors() }

func (e regionEditor[T]) Current(doc content.Document) map[string]string {
	return e.schema.Values(e.get(doc))
}

func (e regionEditor[T]) Mutation(doc content.Document, values map[string]string) (content.Mutation, error) {
	next, err := Fill(e.schema, e.get(doc), values)
	if err != nil {
		return nil, err
	}
	return e.build(next), nil
}

func sectionEditor[T content.SectionValue](name string, schema Schema[T], get func(content.Document) T) Editor {
	return regionEditor[T]{
		name:   name,
		schema: schema,
		get:    get,
		build:  func(v T) content.Mutation { return content.UpdateSection(v) },
	}
}

func uiEditor[T content.UIRegion](schema Schema[T], get func(content.UIConfig) T) Editor {
	var zero T
	return regionEditor[T]{
		name:   "ui." + string(zero.UIKey()),
		schema: schema,
		get:    func(doc content.Document) T { return get(doc.UI) },
		build:  func(v T) content.Mutation { return content.UpdateUI(v) },
	}
}

var editors = []Editor{
	sectionEditor("hero", HeroSchema, func(d content.Document) content.Hero { return d.Hero }),
	sectionEditor("about", ProfileSchema, func(d content.Document) content.Profile { return d.About }),
	uiEditor(NavSchema, func(u content.UIConfig) content.NavLabels { return u.Nav }),
	uiEditor(HeroLabelsSchema, func(u content.UIConfig) content.HeroLabels { return u.Hero }),
	uiEditor(SectionTitlesSchema, func(u content.UIConfig) content.SectionTitles { return u.SectionTitles }),
	uiEditor(ContactSchema, func(u content.UIConfig) content.ContactConfig { return u.Contact }),
	uiEditor(ChatSchema, func(u content.UIConfig) content.ChatConfig { return u.Chat }),
	uiEditor(BackgroundSchema, func(u content.UIConfig) content.BackgroundConfig { return u.Background }),
	uiEditor(ThemeSchema, func(u content.UIConfig) content.ThemeConfig { return u.Theme }),
	uiEditor(FooterSchema, func(u content.UIConfig) content.Footer { return u.Footer }),
}

// Editors returns every region editor in display order.
func Editors() []Editor {
	return append([]Editor(nil), editors...)
}

// EditorNames returns the editor names, sorted.
func EditorNames() []string {
	names := make([]string, 0, len(editors))
	for _, e := range editors {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// LookupEditor finds an editor by name, case-insensitively.
func LookupEditor(name string) (Editor, error) {
	for _, e := range editors {
		if strings.EqualFold(e.Name(), strings.TrimSpace(name)) {
			return e, nil
		}
	}
	return nil, content.NewNotFoundError("editor", name).WithContext(map[string]interface{}{
		"known": EditorNames(),
	})
}
