package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type loginOptions struct {
	email    string
	password string
}

func newLoginCmd(app *AppContext) *cobra.Command {
	opts := &loginOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as the site admin",
		Long:  "Log in as the site admin. Missing values are prompted for; the password is read without echo on a terminal.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.login")

			reader := bufio.NewReader(cmd.InOrStdin())
			email := strings.TrimSpace(opts.email)
			if email == "" {
				value, err := prompt(cmd, reader, "Email: ", false)
				if err != nil {
					return newCommandError("log in", "reading email", err, "Pass --email.")
				}
				email = value
			}
			password := opts.password
			if password == "" {
				value, err := prompt(cmd, reader, "Password: ", true)
				if err != nil {
					return newCommandError("log in", "reading password", err, "Pass --password.")
				}
				password = value
			}

			if !app.Auth.Login(ctx, email, password) {
				return newCommandError("log in", fmt.Sprintf("checking credentials for %s", email), errNotAuthenticated, "Use the admin email and password from the configuration.")
			}
			user, _ := app.Auth.User()
			logger.Debug(ctx, "login command succeeded", "email", user.Email)
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s <%s>\n", user.Name, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.email, "email", "e", "", "Admin email")
	cmd.Flags().StringVarP(&opts.password, "password", "p", "", "Admin password")

	return cmd
}

func newLogoutCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the admin session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _ := app.CommandContext(cmd, "command.logout")
			wasLoggedIn := app.Auth.IsAuthenticated()
			app.Auth.Logout(ctx)
			if wasLoggedIn {
				fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
			}
			return nil
		},
	}
}

func newWhoamiCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in admin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, ok := app.Auth.User()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", user.Name, user.Email)
			if user.LoggedInAt != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "since %s\n", user.LoggedInAt.Local().Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

func prompt(cmd *cobra.Command, reader *bufio.Reader, label string, secret bool) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), label)
	if secret {
		if file, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(file.Fd())) {
			data, err := term.ReadPassword(int(file.Fd()))
			fmt.Fprintln(cmd.ErrOrStderr())
			if err != nil {
				return "", err
			}
			return string(data), nil
		}
	}

	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
