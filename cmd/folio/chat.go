package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/application/chat"
)

func newChatCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "chat [question]",
		Short: "Ask the portfolio assistant a question",
		Long: `Ask the portfolio assistant a question. Without arguments an interactive
conversation reads one question per line until EOF or "exit".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.chat")
			out := cmd.OutOrStdout()
			doc := app.Store.Snapshot()

			if len(args) > 0 {
				reply, ok := app.Assistant.Ask(ctx, doc, strings.Join(args, " "))
				if !ok {
					return newCommandError("chat", "reading question", fmt.Errorf("question is empty"), "Pass a question, or run 'folio chat' without arguments.")
				}
				fmt.Fprintln(out, reply)
				return nil
			}

			conversation := chat.NewConversation(app.Assistant, doc)
			fmt.Fprintf(out, "%s\n%s\n", doc.UI.Chat.Title, doc.UI.Chat.WelcomeMessage)
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "> ")
				if !scanner.Scan() {
					fmt.Fprintln(out)
					break
				}
				question := strings.TrimSpace(scanner.Text())
				if question == "exit" || question == "quit" {
					break
				}
				if reply, ok := conversation.Send(ctx, doc, question); ok {
					fmt.Fprintln(out, reply)
				}
			}
			if err := scanner.Err(); err != nil {
				return newCommandError("chat", "reading input", err, "Retry the conversation.")
			}
			logger.Debug(ctx, "conversation ended", "messages", len(conversation.Messages()))
			return nil
		},
	}
}
