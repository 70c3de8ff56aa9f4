package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	appsettings "github.com/alexisbeaulieu97/folio/internal/application/settings"
	"github.com/alexisbeaulieu97/folio/internal/domain/content"
	"github.com/alexisbeaulieu97/folio/internal/domain/theme"
	"github.com/alexisbeaulieu97/folio/internal/form"
	"github.com/alexisbeaulieu97/folio/internal/infrastructure/style"
	settingsui "github.com/alexisbeaulieu97/folio/internal/tui/settings"
)

var swatchStyle = lipgloss.NewStyle().Padding(0, 1)

func newThemeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect and change the color theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderTheme(cmd.OutOrStdout(), app.Store.Snapshot().UI, supportsColor(cmd.OutOrStdout()))
			return nil
		},
	}

	cmd.AddCommand(newThemePresetsCmd())
	cmd.AddCommand(newThemeCSSCmd(app))
	cmd.AddCommand(newThemeApplyCmd(app))
	cmd.AddCommand(newThemeSettingsCmd(app))

	return cmd
}

func newThemePresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "presets",
		Short:       "List the built-in palettes",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipAppAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range theme.PresetNames() {
				palette, err := theme.Preset(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-11s %s %s %s %s %s\n", name,
					palette.Primary, palette.Secondary, palette.Accent, palette.Background, palette.Surface)
			}
			return nil
		},
	}
}

func newThemeCSSCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "css",
		Short: "Print the theme stylesheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			css, err := app.Renderer.Stylesheet(app.Store.Snapshot().UI)
			if err != nil {
				return newCommandError("render stylesheet", "executing template", err, "Run 'folio reset' if the stored theme is damaged.")
			}
			_, err = cmd.OutOrStdout().Write(css)
			return err
		},
	}
}

type themeApplyOptions struct {
	preset          string
	colors          map[theme.Role]*string
	style           string
	backgroundType  string
	backgroundValue string
	overlayOpacity  float64
}

func newThemeApplyCmd(app *AppContext) *cobra.Command {
	opts := &themeApplyOptions{colors: make(map[theme.Role]*string)}

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Change theme and background settings in one step",
		Long: `Change theme and background settings in one step. A preset replaces the
five colors first; individual color flags are applied on top of it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.theme.apply")
			if err := app.RequireAdmin("apply theme"); err != nil {
				return err
			}

			root := style.NewRoot()
			session := appsettings.Open(app.Store, root,
				appsettings.WithLogger(logger),
				appsettings.WithPublisher(app.Publisher),
			)
			if err := stageThemeChanges(cmd, session, opts); err != nil {
				session.Cancel(ctx)
				return newCommandError("apply theme", "staging changes", err, "Run 'folio theme presets' for palette names; colors are #RGB or #RRGGBB.")
			}
			if err := session.Apply(ctx); err != nil {
				return newCommandError("apply theme", "saving settings", err, "Check that the state path is writable.")
			}

			renderTheme(cmd.OutOrStdout(), app.Store.Snapshot().UI, supportsColor(cmd.OutOrStdout()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "Palette name ("+strings.Join(theme.PresetNames(), ", ")+")")
	for _, role := range theme.Roles() {
		value := new(string)
		opts.colors[role] = value
		cmd.Flags().StringVar(value, string(role), "", fmt.Sprintf("Hex color for the %s slot", role))
	}
	cmd.Flags().StringVar(&opts.style, "style", "", "Decorative style (neon, metallic or minimal)")
	cmd.Flags().StringVar(&opts.backgroundType, "background-type", "", "Background type (default or image)")
	cmd.Flags().StringVar(&opts.backgroundValue, "background-value", "", "Background image URL")
	cmd.Flags().Float64Var(&opts.overlayOpacity, "overlay-opacity", 0, "Overlay opacity between 0 and 1")

	return cmd
}

func stageThemeChanges(cmd *cobra.Command, session *appsettings.Session, opts *themeApplyOptions) error {
	flags := cmd.Flags()
	if opts.preset != "" {
		if err := session.ApplyPreset(opts.preset); err != nil {
			return err
		}
	}
	for _, role := range theme.Roles() {
		if !flags.Changed(string(role)) {
			continue
		}
		hex := strings.TrimSpace(*opts.colors[role])
		if err := form.Validator().Var(hex, "required,hexcolor"); err != nil {
			return fmt.Errorf("%s: %q is not a hex color", role, hex)
		}
		if err := session.SetColor(role, strings.ToUpper(hex)); err != nil {
			return err
		}
	}
	if flags.Changed("style") {
		if err := session.SetStyle(content.ThemeStyle(strings.ToLower(opts.style))); err != nil {
			return err
		}
	}
	if flags.Changed("background-type") {
		if err := session.SetBackgroundType(content.BackgroundType(strings.ToLower(opts.backgroundType))); err != nil {
			return err
		}
	}
	if flags.Changed("background-value") {
		value := strings.TrimSpace(opts.backgroundValue)
		if err := form.Validator().Var(value, "asset_url"); err != nil {
			return fmt.Errorf("background value %q is not a usable URL", value)
		}
		if err := session.SetBackgroundValue(value); err != nil {
			return err
		}
	}
	if flags.Changed("overlay-opacity") {
		if err := session.SetOverlayOpacity(opts.overlayOpacity); err != nil {
			return err
		}
	}
	if session.Background().Type == content.BackgroundImage && session.Background().Value == "" {
		return errors.New("an image background needs --background-value")
	}
	return nil
}

func newThemeSettingsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Open the interactive settings panel with live preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.theme.settings")
			if err := app.RequireAdmin("open settings"); err != nil {
				return err
			}
			if !isTerminal(cmd.InOrStdin()) || !isTerminal(cmd.OutOrStdout()) {
				return newCommandError("open settings", "checking terminal", errors.New("the settings panel needs an interactive terminal"), "Use 'folio theme apply' in scripts.")
			}

			root := style.NewRoot()
			theme.Apply(root, app.Store.Snapshot().UI.Theme)
			session := appsettings.Open(app.Store, root,
				appsettings.WithLogger(logger),
				appsettings.WithPublisher(app.Publisher),
			)
			// A panel that exits any other way discards its drafts.
			defer session.Cancel(ctx)

			logger.Info(ctx, "opening settings panel")
			program := tea.NewProgram(
				settingsui.NewModel(ctx, session, root),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithAltScreen(),
			)
			if _, err := program.Run(); err != nil {
				logger.Error(ctx, "settings panel failed", "error", err)
				return newCommandError("open settings", "running panel", err, "Retry in a larger terminal window.")
			}

			out := cmd.OutOrStdout()
			switch session.State() {
			case appsettings.StateApplied:
				fmt.Fprintln(out, "Settings applied.")
				renderTheme(out, app.Store.Snapshot().UI, supportsColor(out))
			default:
				fmt.Fprintln(out, "Settings discarded.")
			}
			return nil
		},
	}
}

func renderTheme(w io.Writer, ui content.UIConfig, color bool) {
	slots := theme.Slots(ui.Theme)
	fmt.Fprintf(w, "Style: %s\n", ui.Theme.Style)
	for _, role := range theme.Roles() {
		hex := theme.Color(ui.Theme, role)
		swatch := ""
		if color {
			swatch = swatchStyle.Background(lipgloss.Color(hex)).Render("  ") + " "
		}
		fmt.Fprintf(w, "  %s%-10s %-8s rgb(%s)\n", swatch, role, hex, slots[string(role)])
	}
	fmt.Fprintf(w, "Background: %s", ui.Background.Type)
	if ui.Background.Type == content.BackgroundImage {
		fmt.Fprintf(w, " %s", ui.Background.Value)
	}
	fmt.Fprintf(w, " (overlay %.2f)\n", ui.Background.OverlayOpacity)
}

func isTerminal(stream any) bool {
	file, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func supportsColor(writer any) bool {
	return isTerminal(writer) && os.Getenv("NO_COLOR") == ""
}
