package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeEmptyObjectYieldsDefaults(t *testing.T) {
	t.Parallel()

	merged, err := Merge(Default(), []byte(`{}`))
	require.NoError(t, err)
	require.Equal(t, Default(), merged)
}

func TestMergeRejectsNonObjects(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"invalid json": `{"hero":`,
		"array":        `[1,2,3]`,
		"string":       `"hello"`,
		"null":         `null`,
	}

	for name, raw := range cases {
		raw := raw
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			merged, err := Merge(Default(), []byte(raw))
			require.Error(t, err)
			require.True(t, HasCode(err, ErrCodeMalformed))
			require.Equal(t, Default(), merged)
		})
	}
}

func TestMergeUISubRegionsFieldByField(t *testing.T) {
	t.Parallel()

	raw := `{
		"ui": {
			"nav": {"brand": "ACME"},
			"hero": {"btnPrimary": "See work"},
			"sectionTitles": {"projects": "Things I built"},
			"contact": {"link": "mailto:me@example.com"},
			"chat": {"title": "ASK ME"},
			"background": {"type": "image", "value": "https://example.com/bg.png"},
			"theme": {"primary": "#00FF41"}
		}
	}`

	merged, err := Merge(Default(), []byte(raw))
	require.NoError(t, err)

	defaults := Default()
	ui := merged.UI

	require.Equal(t, "ACME", ui.Nav.Brand)
	require.Equal(t, defaults.UI.Nav.BrandAccent, ui.Nav.BrandAccent)
	require.Equal(t, defaults.UI.Nav.ItemContact, ui.Nav.ItemContact)

	require.Equal(t, "See work", ui.Hero.BtnPrimary)
	require.Equal(t, defaults.UI.Hero.RolePrefix, ui.Hero.RolePrefix)

	require.Equal(t, "Things I built", ui.SectionTitles.Projects)
	require.Equal(t, defaults.UI.SectionTitles.About, ui.SectionTitles.About)

	require.Equal(t, "mailto:me@example.com", ui.Contact.Link)
	require.Equal(t, defaults.UI.Contact.BtnText, ui.Contact.BtnText)

	require.Equal(t, "ASK ME", ui.Chat.Title)
	require.Equal(t, defaults.UI.Chat.Placeholder, ui.Chat.Placeholder)

	require.Equal(t, BackgroundImage, ui.Background.Type)
	require.Equal(t, "https://example.com/bg.png", ui.Background.Value)
	require.Equal(t, 0.7, ui.Background.OverlayOpacity)

	require.Equal(t, "#00FF41", ui.Theme.Primary)
	require.Equal(t, defaults.UI.Theme.Secondary, ui.Theme.Secondary)
	require.Equal(t, StyleNeon, ui.Theme.Style)

	require.Equal(t, defaults.UI.Footer, ui.Footer)
	require.Equal(t, defaults.Hero, merged.Hero)
	require.Equal(t, defaults.Projects, merged.Projects)
}

func TestMergeTopLevelObjectsFieldByField(t *testing.T) {
	t.Parallel()

	merged, err := Merge(Default(), []byte(`{"hero": {"headline": "I'm Sam"}, "about": {"name": "Sam"}}`))
	require.NoError(t, err)

	defaults := Default()
	require.Equal(t, "I'm Sam", merged.Hero.Headline)
	require.Equal(t, defaults.Hero.Greeting, merged.Hero.Greeting)
	require.Equal(t, "Sam", merged.About.Name)
	require.Equal(t, defaults.About.Skills, merged.About.Skills)
	require.Equal(t, defaults.About.Socials, merged.About.Socials)
}

func TestMergeArraysReplaceWholesale(t *testing.T) {
	t.Parallel()

	raw := `{
		"projects": [{"id": "x", "title": "Only one", "tags": ["Go"]}],
		"education": [],
		"about": {"skills": ["Go"]}
	}`

	merged, err := Merge(Default(), []byte(raw))
	require.NoError(t, err)

	require.Len(t, merged.Projects, 1)
	require.Equal(t, "x", merged.Projects[0].ID)
	require.Equal(t, []string{"Go"}, merged.Projects[0].Tags)
	require.Empty(t, merged.Projects[0].ImageURL, "array elements are not merged with default elements")

	require.NotNil(t, merged.Education)
	require.Empty(t, merged.Education)

	require.Equal(t, []string{"Go"}, merged.About.Skills)
	require.Equal(t, Default().About.Roles, merged.About.Roles)
}

func TestMergeAbsentArraysKeepDefaults(t *testing.T) {
	t.Parallel()

	merged, err := Merge(Default(), []byte(`{"hero": {"greeting": "Hey"}}`))
	require.NoError(t, err)
	require.Equal(t, Default().Education, merged.Education)
	require.Equal(t, Default().Projects, merged.Projects)
}

func TestMergeWrongKindAndNullFallBackToDefaults(t *testing.T) {
	t.Parallel()

	raw := `{
		"hero": "not an object",
		"projects": {"id": "1"},
		"ui": {
			"background": {"overlayOpacity": "very", "value": null},
			"theme": null,
			"footer": 42
		}
	}`

	merged, err := Merge(Default(), []byte(raw))
	require.NoError(t, err)

	defaults := Default()
	require.Equal(t, defaults.Hero, merged.Hero)
	require.Equal(t, defaults.Projects, merged.Projects)
	require.Equal(t, defaults.UI.Background, merged.UI.Background)
	require.Equal(t, defaults.UI.Theme, merged.UI.Theme)
	require.Equal(t, defaults.UI.Footer, merged.UI.Footer)
	require.Nil(t, merged.Extensions)
}

func TestMergeMismatchedElementsOnlyResetTheirField(t *testing.T) {
	t.Parallel()

	raw := `{
		"hero": {"headline": "Edited headline"},
		"about": {"name": "Sam", "roles": ["a", 2], "socials": {"github": 5}},
		"projects": [{"id": 7, "title": "P"}],
		"education": [{"id": "e1", "school": "Uni"}],
		"ui": {"theme": {"primary": "#123456"}, "nav": {"brand": "SAM", "glow": "on"}}
	}`

	merged, dropped, err := MergeFields(Default(), []byte(raw))
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"about.roles", "projects"}, dropped)

	defaults := Default()
	require.Equal(t, "Edited headline", merged.Hero.Headline)
	require.Equal(t, defaults.Hero.Greeting, merged.Hero.Greeting)
	require.Equal(t, "Sam", merged.About.Name)
	require.Equal(t, defaults.About.Roles, merged.About.Roles)
	require.Equal(t, defaults.About.Socials, merged.About.Socials)
	require.Equal(t, defaults.Projects, merged.Projects)
	require.Equal(t, []EducationItem{{ID: "e1", School: "Uni"}}, merged.Education)
	require.Equal(t, "#123456", merged.UI.Theme.Primary)
	require.Equal(t, "SAM", merged.UI.Nav.Brand)
	require.Equal(t, Extensions{"ui": map[string]any{"nav": map[string]any{"glow": "on"}}}, merged.Extensions)

	viaMerge, err := Merge(Default(), []byte(raw))
	require.NoError(t, err)
	require.Equal(t, merged, viaMerge)
}

func TestMergeCarriesUnknownMembers(t *testing.T) {
	t.Parallel()

	raw := `{
		"blog": {"enabled": true},
		"ui": {"theme": {"glow": 0.5}, "banner": "hello"}
	}`

	merged, err := Merge(Default(), []byte(raw))
	require.NoError(t, err)

	require.Equal(t, Extensions{
		"blog": map[string]any{"enabled": true},
		"ui": map[string]any{
			"theme":  map[string]any{"glow": 0.5},
			"banner": "hello",
		},
	}, merged.Extensions)

	encoded, err := Encode(merged)
	require.NoError(t, err)

	var tree map[string]any
	require.NoError(t, json.Unmarshal(encoded, &tree))
	ui := tree["ui"].(map[string]any)
	require.Equal(t, "hello", ui["banner"])
	require.Equal(t, 0.5, ui["theme"].(map[string]any)["glow"])
	require.Equal(t, "#A855F7", ui["theme"].(map[string]any)["primary"])
}

func TestEncodeMergeRoundTrip(t *testing.T) {
	t.Parallel()

	doc := Default()
	doc.Hero.Greeting = "Hello & welcome <3"
	doc.Projects = []Project{}
	doc.About.Roles = []string{}
	doc.UI.Background = BackgroundConfig{Type: BackgroundImage, Value: "https://example.com/a.jpg", OverlayOpacity: 0}
	doc.UI.Contact.Link = ""
	doc.Extensions = Extensions{"custom": map[string]any{"n": 1.0}}

	encoded, err := Encode(doc)
	require.NoError(t, err)
	require.Contains(t, string(encoded), `"projects":[]`)
	require.Contains(t, string(encoded), "Hello & welcome <3")

	loaded, err := Merge(Default(), encoded)
	require.NoError(t, err)
	require.Equal(t, doc, loaded)
}

func TestMergeDoesNotAliasBase(t *testing.T) {
	t.Parallel()

	base := Default()
	merged, err := Merge(base, []byte(`{}`))
	require.NoError(t, err)

	merged.Projects[0].Tags[0] = "changed"
	require.Equal(t, "React", base.Projects[0].Tags[0])
}
