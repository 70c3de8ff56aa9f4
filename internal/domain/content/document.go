package content

// Document is the single aggregate holding every editable piece of the
// portfolio. A live Document is always fully populated and is never mutated in
// place: every change produces a new value through a Mutation.
type Document struct {
	Hero      Hero            `json:"hero" yaml:"hero"`
	About     Profile         `json:"about" yaml:"about"`
	Education []EducationItem `json:"education" yaml:"education" validate:"dive"`
	Projects  []Project       `json:"projects" yaml:"projects" validate:"dive"`
	UI        UIConfig        `json:"ui" yaml:"ui"`

	// Extensions carries object members found in persisted state that the
	// typed model does not know about. They are written back on persist.
	Extensions Extensions `json:"-" yaml:"-"`
}

// Hero holds the landing section copy.
type Hero struct {
	Greeting    string `json:"greeting" yaml:"greeting" validate:"max=200"`
	Headline    string `json:"headline" yaml:"headline" validate:"required,max=200"`
	Subheadline string `json:"subheadline" yaml:"subheadline" validate:"max=500"`
}

// Profile is the "about" region.
type Profile struct {
	Name      string   `json:"name" yaml:"name" validate:"required,max=120"`
	Roles     []string `json:"roles" yaml:"roles" validate:"dive,max=80"`
	Bio       string   `json:"bio" yaml:"bio"`
	AvatarURL string   `json:"avatarUrl" yaml:"avatarUrl" validate:"omitempty,asset_url"`
	Email     string   `json:"email" yaml:"email" validate:"omitempty,email"`
	Phone     string   `json:"phone" yaml:"phone"`
	Address   string   `json:"address" yaml:"address"`
	Skills    []string `json:"skills" yaml:"skills" validate:"dive,max=80"`
	Socials   Socials  `json:"socials" yaml:"socials"`
}

// Socials lists optional profile links. Empty strings mean "not shown".
type Socials struct {
	GitHub   string `json:"github" yaml:"github" validate:"omitempty,asset_url"`
	Twitter  string `json:"twitter" yaml:"twitter" validate:"omitempty,asset_url"`
	LinkedIn string `json:"linkedin" yaml:"linkedin" validate:"omitempty,asset_url"`
}

// EducationItem is one entry of the chronological education list.
type EducationItem struct {
	ID          string `json:"id" yaml:"id" validate:"required"`
	School      string `json:"school" yaml:"school" validate:"required,max=200"`
	Degree      string `json:"degree" yaml:"degree" validate:"max=200"`
	Year        string `json:"year" yaml:"year" validate:"max=40"`
	Description string `json:"description" yaml:"description"`
}

// Project is one entry of the project grid.
type Project struct {
	ID          string   `json:"id" yaml:"id" validate:"required"`
	Title       string   `json:"title" yaml:"title" validate:"required,max=200"`
	Description string   `json:"description" yaml:"description"`
	ImageURL    string   `json:"imageUrl" yaml:"imageUrl" validate:"omitempty,asset_url"`
	Tags        []string `json:"tags" yaml:"tags" validate:"dive,max=40"`
	Link        string   `json:"link" yaml:"link" validate:"omitempty,asset_url"`
}

// UIConfig bundles every label and presentation setting of the page.
type UIConfig struct {
	Nav           NavLabels        `json:"nav" yaml:"nav"`
	Hero          HeroLabels       `json:"hero" yaml:"hero"`
	SectionTitles SectionTitles    `json:"sectionTitles" yaml:"sectionTitles"`
	Contact       ContactConfig    `json:"contact" yaml:"contact"`
	Chat          ChatConfig       `json:"chat" yaml:"chat"`
	Background    BackgroundConfig `json:"background" yaml:"background"`
	Theme         ThemeConfig      `json:"theme" yaml:"theme"`
	Footer        Footer           `json:"footer" yaml:"footer"`
}

// NavLabels holds the navigation bar copy.
type NavLabels struct {
	Brand       string `json:"brand" yaml:"brand" validate:"max=40"`
	BrandAccent string `json:"brandAccent" yaml:"brandAccent" validate:"max=40"`
	ItemAbout   string `json:"itemAbout" yaml:"itemAbout" validate:"max=40"`
	ItemEdu     string `json:"itemEdu" yaml:"itemEdu" validate:"max=40"`
	ItemProj    string `json:"itemProj" yaml:"itemProj" validate:"max=40"`
	ItemContact string `json:"itemContact" yaml:"itemContact" validate:"max=40"`
}

// HeroLabels holds the hero buttons and the typewriter prefix.
type HeroLabels struct {
	RolePrefix   string `json:"rolePrefix" yaml:"rolePrefix" validate:"max=60"`
	BtnPrimary   string `json:"btnPrimary" yaml:"btnPrimary" validate:"max=60"`
	BtnSecondary string `json:"btnSecondary" yaml:"btnSecondary" validate:"max=60"`
}

// SectionTitles holds the heading of each page section.
type SectionTitles struct {
	About     string `json:"about" yaml:"about" validate:"max=120"`
	Education string `json:"education" yaml:"education" validate:"max=120"`
	Projects  string `json:"projects" yaml:"projects" validate:"max=120"`
	Contact   string `json:"contact" yaml:"contact" validate:"max=120"`
}

// ContactConfig configures the contact block. An empty Link falls back to a
// mailto: of the profile email when rendered.
type ContactConfig struct {
	Description string `json:"description" yaml:"description"`
	BtnText     string `json:"btnText" yaml:"btnText" validate:"max=60"`
	Link        string `json:"link" yaml:"link" validate:"omitempty,asset_url"`
}

// ChatConfig holds the chat widget copy.
type ChatConfig struct {
	Title          string `json:"title" yaml:"title" validate:"max=60"`
	WelcomeMessage string `json:"welcomeMessage" yaml:"welcomeMessage" validate:"max=500"`
	Placeholder    string `json:"placeholder" yaml:"placeholder" validate:"max=120"`
}

// BackgroundType selects between the built-in pattern and a custom image.
type BackgroundType string

const (
	BackgroundDefault BackgroundType = "default"
	BackgroundImage   BackgroundType = "image"
)

// Valid reports whether t is a known background type.
func (t BackgroundType) Valid() bool {
	return t == BackgroundDefault || t == BackgroundImage
}

// BackgroundConfig describes the page background.
type BackgroundConfig struct {
	Type           BackgroundType `json:"type" yaml:"type" validate:"required,oneof=default image"`
	Value          string         `json:"value" yaml:"value" validate:"required_if=Type image,asset_url"`
	OverlayOpacity float64        `json:"overlayOpacity" yaml:"overlayOpacity" validate:"min=0,max=1"`
}

// ThemeStyle is the decorative style tag of a theme.
type ThemeStyle string

const (
	StyleNeon     ThemeStyle = "neon"
	StyleMetallic ThemeStyle = "metallic"
	StyleMinimal  ThemeStyle = "minimal"
)

// ThemeStyles lists the known style tags.
func ThemeStyles() []ThemeStyle {
	return []ThemeStyle{StyleNeon, StyleMetallic, StyleMinimal}
}

// Valid reports whether s is a known style tag.
func (s ThemeStyle) Valid() bool {
	for _, known := range ThemeStyles() {
		if s == known {
			return true
		}
	}
	return false
}

// ThemeConfig is the five-color palette plus style tag applied to the page.
type ThemeConfig struct {
	Primary    string     `json:"primary" yaml:"primary" validate:"required,hexcolor"`
	Secondary  string     `json:"secondary" yaml:"secondary" validate:"required,hexcolor"`
	Accent     string     `json:"accent" yaml:"accent" validate:"required,hexcolor"`
	Background string     `json:"background" yaml:"background" validate:"required,hexcolor"`
	Surface    string     `json:"surface" yaml:"surface" validate:"required,hexcolor"`
	Style      ThemeStyle `json:"style" yaml:"style" validate:"required,oneof=neon metallic minimal"`
}

// Footer is the footer line.
type Footer string

// Clone returns a deep copy of the document. Mutations work on clones so that
// previously handed out snapshots never observe later edits.
func (d Document) Clone() Document {
	out := d
	out.About.Roles = cloneStrings(d.About.Roles)
	out.About.Skills = cloneStrings(d.About.Skills)
	out.Education = append([]EducationItem{}, d.Education...)
	out.Projects = make([]Project, len(d.Projects))
	for i, p := range d.Projects {
		p.Tags = cloneStrings(p.Tags)
		out.Projects[i] = p
	}
	out.Extensions = d.Extensions.clone()
	return out
}

// Normalize replaces nil slices with empty ones so an empty list persists as
// [] and is not mistaken for an absent key on the next load.
func (d Document) Normalize() Document {
	if d.About.Roles == nil {
		d.About.Roles = []string{}
	}
	if d.About.Skills == nil {
		d.About.Skills = []string{}
	}
	if d.Education == nil {
		d.Education = []EducationItem{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	for i := range d.Projects {
		if d.Projects[i].Tags == nil {
			d.Projects[i].Tags = []string{}
		}
	}
	if len(d.Extensions) == 0 {
		d.Extensions = nil
	}
	return d
}

// ProjectByID returns the first project with the given id.
func (d Document) ProjectByID(id string) (Project, bool) {
	for _, p := range d.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// EducationByID returns the first education entry with the given id.
func (d Document) EducationByID(id string) (EducationItem, bool) {
	for _, e := range d.Education {
		if e.ID == id {
			return e, true
		}
	}
	return EducationItem{}, false
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string{}, in...)
}
