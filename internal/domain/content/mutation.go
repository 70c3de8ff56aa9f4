package content

import "strings"

// Mutation computes the next document from the previous one. Apply never
// modifies its input and reports whether the mutation found its target;
// update and delete by id report false, and leave the document unchanged,
// when no entry carries the id.
type Mutation interface {
	Name() string
	Apply(doc Document) (Document, bool)
}

// Section names a top-level region replaceable through UpdateSection.
type Section string

const (
	SectionHero  Section = "hero"
	SectionAbout Section = "about"
)

// SectionValue is implemented by the values of replaceable top-level regions.
type SectionValue interface {
	SectionName() Section
	applySection(*Document)
}

// SectionName implements SectionValue.
func (Hero) SectionName() Section { return SectionHero }

func (h Hero) applySection(d *Document) { d.Hero = h }

// SectionName implements SectionValue.
func (Profile) SectionName() Section { return SectionAbout }

func (p Profile) applySection(d *Document) {
	p.Roles = cloneStrings(p.Roles)
	p.Skills = cloneStrings(p.Skills)
	d.About = p
}

// UIKey names one sub-region of UIConfig.
type UIKey string

const (
	UINav           UIKey = "nav"
	UIHero          UIKey = "hero"
	UISectionTitles UIKey = "sectionTitles"
	UIContact       UIKey = "contact"
	UIChat          UIKey = "chat"
	UIBackground    UIKey = "background"
	UITheme         UIKey = "theme"
	UIFooter        UIKey = "footer"
)

// UIKeys lists every UI sub-region in declaration order.
func UIKeys() []UIKey {
	return []UIKey{UINav, UIHero, UISectionTitles, UIContact, UIChat, UIBackground, UITheme, UIFooter}
}

// ParseUIKey resolves a UI sub-region name, case-insensitively.
func ParseUIKey(name string) (UIKey, error) {
	for _, key := range UIKeys() {
		if strings.EqualFold(string(key), name) {
			return key, nil
		}
	}
	return "", NewNotFoundError("ui_region", name)
}

// UIRegion is implemented by the value types of each UI sub-region.
type UIRegion interface {
	UIKey() UIKey
	applyUI(*UIConfig)
}

func (NavLabels) UIKey() UIKey { return UINav }
func (HeroLabels) UIKey() UIKey { return UIHero }
func (SectionTitles) UIKey() UIKey { return UISectionTitles }
func (ContactConfig) UIKey() UIKey { return UIContact }
func (ChatConfig) UIKey() UIKey { return UIChat }
func (BackgroundConfig) UIKey() UIKey { return UIBackground }
func (ThemeConfig) UIKey() UIKey { return UITheme }
func (Footer) UIKey() UIKey { return UIFooter }
func (v NavLabels) applyUI(u *UIConfig) { u.Nav = v }
func (v HeroLabels) applyUI(u *UIConfig) { u.Hero = v }
func (v SectionTitles) applyUI(u *UIConfig) { u.SectionTitles = v }
func (v ContactConfig) applyUI(u *UIConfig) { u.Contact = v }
func (v ChatConfig) applyUI(u *UIConfig) { u.Chat = v }
func (v BackgroundConfig) applyUI(u *UIConfig) { u.Background = v }
func (v ThemeConfig) applyUI(u *UIConfig) { u.Theme = v }
func (v Footer) applyUI(u *UIConfig) { u.Footer = v }

// Region returns the current value of the named UI sub-region.
func (u UIConfig) Region(key UIKey) UIRegion {
	switch key {
	case UINav:
		return u.Nav
	case UIHero:
		return u.Hero
	case UISectionTitles:
		return u.SectionTitles
	case UIContact:
		return u.Contact
	case UIChat:
		return u.Chat
	case UIBackground:
		return u.Background
	case UITheme:
		return u.Theme
	case UIFooter:
		return u.Footer
	default:
		return nil
	}
}

type mutationFunc struct {
	name  string
	apply func(Document) (Document, bool)
}

func (m mutationFunc) Name() string { return m.name }

func (m mutationFunc) Apply(doc Document) (Document, bool) {
	return m.apply(doc.Clone())
}

// UpdateSection replaces an entire top-level region with value.
func UpdateSection(value SectionValue) Mutation {
	return mutationFunc{
		name: "update_section:" + string(value.SectionName()),
		apply: func(doc Document) (Document, bool) {
			value.applySection(&doc)
			doc.Extensions = doc.Extensions.without(string(value.SectionName()))
			return doc, true
		},
	}
}

// UpdateUI replaces one UI sub-region wholesale, unknown members included.
func UpdateUI(region UIRegion) Mutation {
	return mutationFunc{
		name: "update_ui:" + string(region.UIKey()),
		apply: func(doc Document) (Document, bool) {
			region.applyUI(&doc.UI)
			doc.Extensions = doc.Extensions.without("ui", string(region.UIKey()))
			return doc, true
		},
	}
}

// UpdateProject replaces, at the same index, the project whose id matches.
func UpdateProject(project Project) Mutation {
	project.Tags = cloneStrings(project.Tags)
	return mutationFunc{
		name: "update_project",
		apply: func(doc Document) (Document, bool) {
			for i := range doc.Projects {
				if doc.Projects[i].ID == project.ID {
					doc.Projects[i] = project
					return doc, true
				}
			}
			return doc, false
		},
	}
}

// AddProject appends project. The caller supplies a unique id.
func AddProject(project Project) Mutation {
	project.Tags = cloneStrings(project.Tags)
	return mutationFunc{
		name: "add_project",
		apply: func(doc Document) (Document, bool) {
			doc.Projects = append(doc.Projects, project)
			return doc, true
		},
	}
}

// DeleteProject removes the first project with the given id.
func DeleteProject(id string) Mutation {
	return mutationFunc{
		name: "delete_project",
		apply: func(doc Document) (Document, bool) {
			for i := range doc.Projects {
				if doc.Projects[i].ID == id {
					doc.Projects = append(doc.Projects[:i], doc.Projects[i+1:]...)
					return doc, true
				}
			}
			return doc, false
		},
	}
}

// UpdateEducation replaces, at the same index, the entry whose id matches.
func UpdateEducation(item EducationItem) Mutation {
	return mutationFunc{
		name: "update_education",
		apply: func(doc Document) (Document, bool) {
			for i := range doc.Education {
				if doc.Education[i].ID == item.ID {
					doc.Education[i] = item
					return doc, true
				}
			}
			return doc, false
		},
	}
}

// AddEducation appends item. The caller supplies a unique id.
func AddEducation(item EducationItem) Mutation {
	return mutationFunc{
		name: "add_education",
		apply: func(doc Document) (Document, bool) {
			doc.Education = append(doc.Education, item)
			return doc, true
		},
	}
}

// DeleteEducation removes the first education entry with the given id.
func DeleteEducation(id string) Mutation {
	return mutationFunc{
		name: "delete_education",
		apply: func(doc Document) (Document, bool) {
			for i := range doc.Education {
				if doc.Education[i].ID == id {
					doc.Education = append(doc.Education[:i], doc.Education[i+1:]...)
					return doc, true
				}
			}
			return doc, false
		},
	}
}

// Reset replaces the whole document with defaults, dropping extensions.
func Reset(defaults Document) Mutation {
	return mutationFunc{
		name: "reset",
		apply: func(Document) (Document, bool) {
			return defaults.Clone(), true
		},
	}
}

// ReplaceDocument swaps in an already merged document, as produced by an import.
func ReplaceDocument(next Document) Mutation {
	return mutationFunc{
		name: "replace_document",
		apply: func(Document) (Document, bool) {
			return next.Clone(), true
		},
	}
}

// Batch applies mutations in order as one transaction. It reports a match only
// when every mutation matched.
func Batch(mutations ...Mutation) Mutation {
	names := make([]string, 0, len(mutations))
	for _, m := range mutations {
		names = append(names, m.Name())
	}
	return mutationFunc{
		name: "batch(" + strings.Join(names, ",") + ")",
		apply: func(doc Document) (Document, bool) {
			matched := true
			for _, m := range mutations {
				var ok bool
				doc, ok = m.Apply(doc)
				matched = matched && ok
			}
			return doc, matched
		},
	}
}
