package form

import (
	"github.com/alexisbeaulieu97/folio/internal/domain/content"
)

// HeroSchema edits the landing section copy.
var HeroSchema = Schema[content.Hero]{
	Title: "Hero",
	Fields: []Field[content.Hero]{
		text("greeting", "Greeting Text",
			func(v content.Hero) string { return v.Greeting },
			func(v *content.Hero, s string) { v.Greeting = s }),
		text("headline", "Main Headline (Name)",
			func(v content.Hero) string { return v.Headline },
			func(v *content.Hero, s string) { v.Headline = s }),
		textOf(KindTextarea, "subheadline", "Sub Headline",
			func(v content.Hero) string { return v.Subheadline },
			func(v *content.Hero, s string) { v.Subheadline = s }),
	},
}

// ProfileSchema edits the about region, socials included.
var ProfileSchema = Schema[content.Profile]{
	Title: "About",
	Fields: []Field[content.Profile]{
		text("name", "Full Name",
			func(v content.Profile) string { return v.Name },
			func(v *content.Profile, s string) { v.Name = s }),
		textOf(KindImage, "avatarUrl", "Profile Picture URL",
			func(v content.Profile) string { return v.AvatarURL },
			func(v *content.Profile, s string) { v.AvatarURL = s }),
		list("roles", "Roles (Comma Separated)",
			func(v content.Profile) []string { return v.Roles },
			func(v *content.Profile, items []string) { v.Roles = items }),
		textOf(KindTextarea, "bio", "Biography",
			func(v content.Profile) string { return v.Bio },
			func(v *content.Profile, s string) { v.Bio = s }),
		list("skills", "Skills (Comma Separated)",
			func(v content.Profile) []string { return v.Skills },
			func(v *content.Profile, items []string) { v.Skills = items }),
		text("email", "Email",
			func(v content.Profile) string { return v.Email },
			func(v *content.Profile, s string) { v.Email = s }),
		text("phone", "Phone",
			func(v content.Profile) string { return v.Phone },
			func(v *content.Profile, s string) { v.Phone = s }),
		text("address", "Location",
			func(v content.Profile) string { return v.Address },
			func(v *content.Profile, s string) { v.Address = s }),
		text("github", "GitHub URL",
			func(v content.Profile) string { return v.Socials.GitHub },
			func(v *content.Profile, s string) { v.Socials.GitHub = s }),
		text("twitter", "Twitter URL",
			func(v content.Profile) string { return v.Socials.Twitter },
			func(v *content.Profile, s string) { v.Socials.Twitter = s }),
		text("linkedin", "LinkedIn URL",
			func(v content.Profile) string { return v.Socials.LinkedIn },
			func(v *content.Profile, s string) { v.Socials.LinkedIn = s }),
	},
}

// ProjectSchema edits one project card. The id is not editable.
var ProjectSchema = Schema[content.Project]{
	Title: "Project",
	Fields: []Field[content.Project]{
		text("title", "Project Title",
			func(v content.Project) string { return v.Title },
			func(v *content.Project, s string) { v.Title = s }),
		textOf(KindTextarea, "description", "Description",
			func(v content.Project) string { return v.Description },
			func(v *content.Project, s string) { v.Description = s }),
		textOf(KindImage, "imageUrl", "Image URL",
			func(v content.Project) string { return v.ImageURL },
			func(v *content.Project, s string) { v.ImageURL = s }),
		list("tags", "Tags (comma separated)",
			func(v content.Project) []string { return v.Tags },
			func(v *content.Project, items []string) { v.Tags = items }),
		text("link", "Project Link",
			func(v content.Project) string { return v.Link },
			func(v *content.Project, s string) { v.Link = s }),
	},
}

// EducationSchema edits one education entry. The id is not editable.
var EducationSchema = Schema[content.EducationItem]{
	Title: "Education",
	Fields: []Field[content.EducationItem]{
		text("school", "School / University",
			func(v content.EducationItem) string { return v.School },
			func(v *content.EducationItem, s string) { v.School = s }),
		text("degree", "Degree / Certificate",
			func(v content.EducationItem) string { return v.Degree },
			func(v *content.EducationItem, s string) { v.Degree = s }),
		text("year", "Years (e.g. 2020-2022)",
			func(v content.EducationItem) string { return v.Year },
			func(v *content.EducationItem, s string) { v.Year = s }),
		textOf(KindTextarea, "description", "Description",
			func(v content.EducationItem) string { return v.Description },
			func(v *content.EducationItem, s string) { v.Description = s }),
	},
}

var NavSchema = Schema[content.NavLabels]{
	Title: "Navigation",
	Fields: []Field[content.NavLabels]{
		text("brand", "Brand Name",
			func(v content.NavLabels) string { return v.Brand },
			func(v *content.NavLabels, s string) { v.Brand = s }),
		text("brandAccent", "Brand Accent (Colored)",
			func(v content.NavLabels) string { return v.BrandAccent },
			func(v *content.NavLabels, s string) { v.BrandAccent = s }),
		text("itemAbout", "Link: About",
			func(v content.NavLabels) string { return v.ItemAbout },
			func(v *content.NavLabels, s string) { v.ItemAbout = s }),
		text("itemEdu", "Link: Education",
			func(v content.NavLabels) string { return v.ItemEdu },
			func(v *content.NavLabels, s string) { v.ItemEdu = s }),
		text("itemProj", "Link: Projects",
			func(v content.NavLabels) string { return v.ItemProj },
			func(v *content.NavLabels, s string) { v.ItemProj = s }),
		text("itemContact", "Link: Contact",
			func(v content.NavLabels) string { return v.ItemContact },
			func(v *content.NavLabels, s string) { v.ItemContact = s }),
	},
}

var HeroLabelsSchema = Schema[content.HeroLabels]{
	Title: "Hero Labels",
	Fields: []Field[content.HeroLabels]{
		text("rolePrefix", `Role Prefix (e.g., "I am a")`,
			func(v content.HeroLabels) string { return v.RolePrefix },
			func(v *content.HeroLabels, s string) { v.RolePrefix = s }),
		text("btnPrimary", "Primary Button Text",
			func(v content.HeroLabels) string { return v.BtnPrimary },
			func(v *content.HeroLabels, s string) { v.BtnPrimary = s }),
		text("btnSecondary", "Secondary Button Text",
			func(v content.HeroLabels) string { return v.BtnSecondary },
			func(v *content.HeroLabels, s string) { v.BtnSecondary = s }),
	},
}

var SectionTitlesSchema = Schema[content.SectionTitles]{
	Title: "Section Titles",
	Fields: []Field[content.SectionTitles]{
		text("about", "About",
			func(v content.SectionTitles) string { return v.About },
			func(v *content.SectionTitles, s string) { v.About = s }),
		text("education", "Education",
			func(v content.SectionTitles) string { return v.Education },
			func(v *content.SectionTitles, s string) { v.Education = s }),
		text("projects", "Projects",
			func(v content.SectionTitles) string { return v.Projects },
			func(v *content.SectionTitles, s string) { v.Projects = s }),
		text("contact", "Contact",
			func(v content.SectionTitles) string { return v.Contact },
			func(v *content.SectionTitles, s string) { v.Contact = s }),
	},
}

var ContactSchema = Schema[content.ContactConfig]{
	Title: "Contact",
	Fields: []Field[content.ContactConfig]{
		textOf(KindTextarea, "description", "Description",
			func(v content.ContactConfig) string { return v.Description },
			func(v *content.ContactConfig, s string) { v.Description = s }),
		text("btnText", "Button Text",
			func(v content.ContactConfig) string { return v.BtnText },
			func(v *content.ContactConfig, s string) { v.BtnText = s }),
		text("link", "Custom Link (leave empty for email)",
			func(v content.ContactConfig) string { return v.Link },
			func(v *content.ContactConfig, s string) { v.Link = s }),
	},
}

var ChatSchema = Schema[content.ChatConfig]{
	Title: "Chat",
	Fields: []Field[content.ChatConfig]{
		text("title", "Chat Window Title",
			func(v content.ChatConfig) string { return v.Title },
			func(v *content.ChatConfig, s string) { v.Title = s }),
		textOf(KindTextarea, "welcomeMessage", "Welcome Message",
			func(v content.ChatConfig) string { return v.WelcomeMessage },
			func(v *content.ChatConfig, s string) { v.WelcomeMessage = s }),
		text("placeholder", "Input Placeholder",
			func(v content.ChatConfig) string { return v.Placeholder },
			func(v *content.ChatConfig, s string) { v.Placeholder = s }),
	},
}

var BackgroundSchema = Schema[content.BackgroundConfig]{
	Title: "Background",
	Fields: []Field[content.BackgroundConfig]{
		text("type", "Type (default or image)",
			func(v content.BackgroundConfig) string { return string(v.Type) },
			func(v *content.BackgroundConfig, s string) { v.Type = content.BackgroundType(s) }),
		textOf(KindImage, "value", "Image URL",
			func(v content.BackgroundConfig) string { return v.Value },
			func(v *content.BackgroundConfig, s string) { v.Value = s }),
		number("overlayOpacity", "Overlay Opacity (0-1)",
			func(v content.BackgroundConfig) float64 { return v.OverlayOpacity },
			func(v *content.BackgroundConfig, f float64) { v.OverlayOpacity = f }),
	},
}

var ThemeSchema = Schema[content.ThemeConfig]{
	Title: "Theme",
	Fields: []Field[content.ThemeConfig]{
		text("primary", "Primary",
			func(v content.ThemeConfig) string { return v.Primary },
			func(v *content.ThemeConfig, s string) { v.Primary = s }),
		text("secondary", "Secondary",
			func(v content.ThemeConfig) string { return v.Secondary },
			func(v *content.ThemeConfig, s string) { v.Secondary = s }),
		text("accent", "Accent",
			func(v content.ThemeConfig) string { return v.Accent },
			func(v *content.ThemeConfig, s string) { v.Accent = s }),
		text("background", "Background",
			func(v content.ThemeConfig) string { return v.Background },
			func(v *content.ThemeConfig, s string) { v.Background = s }),
		text("surface", "Surface",
			func(v content.ThemeConfig) string { return v.Surface },
			func(v *content.ThemeConfig, s string) { v.Surface = s }),
		text("style", "Style (neon, metallic or minimal)",
			func(v content.ThemeConfig) string { return string(v.Style) },
			func(v *content.ThemeConfig, s string) { v.Style = content.ThemeStyle(s) }),
	},
}

var FooterSchema = Schema[content.Footer]{
	Title:  "Footer",
	VarTag: "max=300",
	Fields: []Field[content.Footer]{
		text("footer", "Copyright Text",
			func(v content.Footer) string { return string(v) },
			func(v *content.Footer, s string) { *v = content.Footer(s) }),
	},
}
