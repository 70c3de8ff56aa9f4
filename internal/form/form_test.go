package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/folio/internal/domain/content"
	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

func TestSplitListTrimsAndDropsEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b", "c"}, SplitList(" a, b ,c"))
	assert.Equal(t, []string{"React", "Go"}, SplitList("React,, ,Go,"))
	assert.Equal(t, []string{}, SplitList(""))
	assert.Equal(t, "a, b", JoinList([]string{"a", "b"}))
}

func TestFillArrayField(t *testing.T) {
	t.Parallel()

	project := content.Default().Projects[0]
	next, err := Fill(ProjectSchema, project, map[string]string{"tags": " Go , Rust,,"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Go", "Rust"}, next.Tags)
	assert.Equal(t, project.Title, next.Title)
	assert.Equal(t, project.ID, next.ID)
}

func TestFillRejectsUnknownField(t *testing.T) {
	t.Parallel()

	hero := content.Default().Hero
	got, err := Fill(HeroSchema, hero, map[string]string{"tagline": "x"})
	require.Error(t, err)

	var validationErr *apperrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "tagline", validationErr.Field)
	assert.Equal(t, hero, got)
}

func TestFillValidatesResult(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		run   func() error
		field string
	}{
		{
			name: "bad hex",
			run: func() error {
				_, err := Fill(ThemeSchema, content.Default().UI.Theme, map[string]string{"primary": "purple"})
				return err
			},
			field: "primary",
		},
		{
			name: "unknown style",
			run: func() error {
				_, err := Fill(ThemeSchema, content.Default().UI.Theme, map[string]string{"style": "retro"})
				return err
			},
			field: "style",
		},
		{
			name: "image without url",
			run: func() error {
				_, err := Fill(BackgroundSchema, content.Default().UI.Background, map[string]string{"type": "image", "value": ""})
				return err
			},
			field: "value",
		},
		{
			name: "opacity not a number",
			run: func() error {
				_, err := Fill(BackgroundSchema, content.Default().UI.Background, map[string]string{"overlayOpacity": "half"})
				return err
			},
			field: "overlayOpacity",
		},
		{
			name: "opacity out of range",
			run: func() error {
				_, err := Fill(BackgroundSchema, content.Default().UI.Background, map[string]string{"overlayOpacity": "1.5"})
				return err
			},
			field: "overlayOpacity",
		},
		{
			name: "bad email",
			run: func() error {
				_, err := Fill(ProfileSchema, content.Default().About, map[string]string{"email": "nope"})
				return err
			},
			field: "email",
		},
		{
			name: "blank headline",
			run: func() error {
				_, err := Fill(HeroSchema, content.Default().Hero, map[string]string{"headline": ""})
				return err
			},
			field: "headline",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.run()
			require.Error(t, err)
			var validationErr *apperrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestFillFooterUsesVarTag(t *testing.T) {
	t.Parallel()

	next, err := Fill(FooterSchema, content.Footer("old"), map[string]string{"footer": "© 2026"})
	require.NoError(t, err)
	assert.Equal(t, content.Footer("© 2026"), next)

	long := make([]byte, 301)
	for i := range long {
		long[i] = 'x'
	}
	_, err = Fill(FooterSchema, content.Footer("old"), map[string]string{"footer": string(long)})
	require.Error(t, err)
}

func TestAssetURL(t *testing.T) {
	t.Parallel()

	valid := []string{"", "#", "#contact", "https://example.com/a.png", "http://x.io", "mailto:me@example.com", "/img/a.png", "./a.png", "../a.png"}
	for _, raw := range valid {
		assert.True(t, isAssetURL(raw), raw)
	}

	invalid := []string{"javascript:alert(1)", "https://", "ftp://example.com", " https://example.com", "//cdn.example.com/a.png", "mailto:", "not a url"}
	for _, raw := range invalid {
		assert.False(t, isAssetURL(raw), raw)
	}
}

func TestValidateDocument(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateDocument(content.Default()))

	doc := content.Default()
	doc.Projects[1].ImageURL = "javascript:alert(1)"
	err := ValidateDocument(doc)
	require.Error(t, err)

	var validationErr *apperrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "projects[1].imageUrl", validationErr.Field)
}

func TestEditorsCoverEveryRegion(t *testing.T) {
	t.Parallel()

	names := EditorNames()
	assert.Contains(t, names, "hero")
	assert.Contains(t, names, "about")
	for _, key := range content.UIKeys() {
		assert.Contains(t, names, "ui."+string(key))
	}
	assert.Len(t, Editors(), 2+len(content.UIKeys()))
}

func TestEditorMutation(t *testing.T) {
	t.Parallel()

	editor, err := LookupEditor("UI.Nav")
	require.NoError(t, err)
	assert.Equal(t, "Navigation", editor.Title())

	doc := content.Default()
	assert.Equal(t, doc.UI.Nav.Brand, editor.Current(doc)["brand"])

	m, err := editor.Mutation(doc, map[string]string{"brand": "SAM"})
	require.NoError(t, err)

	next, matched := m.Apply(doc)
	require.True(t, matched)
	assert.Equal(t, "SAM", next.UI.Nav.Brand)
	assert.Equal(t, doc.UI.Nav.ItemContact, next.UI.Nav.ItemContact)

	about, err := LookupEditor("about")
	require.NoError(t, err)
	m, err = about.Mutation(doc, map[string]string{"skills": "Go, SQL", "github": "https://github.com/sam"})
	require.NoError(t, err)
	next, _ = m.Apply(doc)
	assert.Equal(t, []string{"Go", "SQL"}, next.About.Skills)
	assert.Equal(t, "https://github.com/sam", next.About.Socials.GitHub)

	_, err = LookupEditor("sidebar")
	require.True(t, content.HasCode(err, content.ErrCodeNotFound))
}
