package main

import (
	"github.com/spf13/cobra"
)

// skipAppAnnotation marks commands that run without the composed services.
const skipAppAnnotation = "folio.skip-app"

type rootFlags struct {
	configPath string
	verbose    bool
	ephemeral  bool
	logFormat  string
}

func newRootCmd() *cobra.Command {
	cmd, _ := newRootCmdWithApp()
	return cmd
}

func newRootCmdWithApp() (*cobra.Command, *AppContext) {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "folio",
		Short:         "Folio edits and renders a single-page portfolio",
		Long:          "Folio keeps the content of a personal portfolio page, edits it from the terminal, previews themes live and renders the static site.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipAppAnnotation] == "true" {
				return nil
			}
			return app.Init(cmd, flags)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to the configuration file (default ~/.folio/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.ephemeral, "ephemeral", false, "Keep all state in memory for this run")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Override the log format (console or json)")

	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newImportCmd(app))
	cmd.AddCommand(newEditCmd(app))
	cmd.AddCommand(newProjectCmd(app))
	cmd.AddCommand(newEducationCmd(app))
	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))
	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newChatCmd(app))
	cmd.AddCommand(newResetCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd, app
}
