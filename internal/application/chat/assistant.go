// Package chat answers visitor questions about the portfolio owner through a
// text generation provider.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/folio/internal/domain/content"
	"github.com/alexisbeaulieu97/folio/internal/ports"
)

const (
	// EmptyReply is shown when the provider answers with no text.
	EmptyReply = "I'm having trouble connecting to the neural network right now."
	// OfflineReply is shown when the provider fails or is not configured.
	OfflineReply = "Error: AI offline. Check API Key."
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one line of a conversation.
type Message struct {
	Role Role
	Text string
}

// Assistant builds prompts from the content document and asks the
// generator. A nil generator means no provider is configured.
type Assistant struct {
	generator ports.TextGenerator
	logger    ports.Logger
}

// NewAssistant returns an Assistant. generator may be nil.
func NewAssistant(generator ports.TextGenerator, logger ports.Logger) *Assistant {
	if logger != nil {
		logger = logger.With("component", "chat")
	}
	return &Assistant{generator: generator, logger: logger}
}

// BuildPrompt renders the profile context followed by the question.
func BuildPrompt(doc content.Document, question string) string {
	projects := make([]string, 0, len(doc.Projects))
	for _, p := range doc.Projects {
		projects = append(projects, fmt.Sprintf("%s: %s", p.Title, p.Description))
	}

	var b strings.Builder
	b.WriteString("You are an AI portfolio assistant.\n")
	b.WriteString("Here is the profile data:\n")
	fmt.Fprintf(&b, "Name: %s\n", doc.About.Name)
	fmt.Fprintf(&b, "Role: %s\n", strings.Join(doc.About.Roles, ", "))
	fmt.Fprintf(&b, "Bio: %s\n", doc.About.Bio)
	fmt.Fprintf(&b, "Projects: %s\n", strings.Join(projects, "; "))
	b.WriteString("\n")
	b.WriteString("Answer questions concisely and professionally.\n")
	b.WriteString("Keep the tone enthusiastic, tech-savvy, and friendly.\n")
	fmt.Fprintf(&b, "If asked about contact info, provide: %s.\n", doc.About.Email)
	b.WriteString("\n\nUser Question: ")
	b.WriteString(question)
	return b.String()
}

// Ask returns the reply to question. It reports false, and makes no call,
// when the question is blank. Provider failures become OfflineReply.
func (a *Assistant) Ask(ctx context.Context, doc content.Document, question string) (string, bool) {
	if strings.TrimSpace(question) == "" {
		return "", false
	}
	if a.generator == nil {
		if a.logger != nil {
			a.logger.Warn(ctx, "chat provider is not configured")
		}
		return OfflineReply, true
	}

	text, err := a.generator.Generate(ctx, BuildPrompt(doc, question))
	if err != nil {
		if a.logger != nil {
			a.logger.Error(ctx, "chat provider failed", "error", err)
		}
		return OfflineReply, true
	}
	if text == "" {
		return EmptyReply, true
	}
	return text, true
}

// Conversation is a chat transcript that opens with the configured welcome
// message.
type Conversation struct {
	assistant *Assistant
	messages  []Message
}

// NewConversation starts a transcript for doc.
func NewConversation(assistant *Assistant, doc content.Document) *Conversation {
	return &Conversation{
		assistant: assistant,
		messages:  []Message{{Role: RoleModel, Text: doc.UI.Chat.WelcomeMessage}},
	}
}

// Send asks question against doc and appends both turns to the transcript.
// A blank question leaves the transcript unchanged.
func (c *Conversation) Send(ctx context.Context, doc content.Document, question string) (string, bool) {
	reply, ok := c.assistant.Ask(ctx, doc, question)
	if !ok {
		return "", false
	}
	c.messages = append(c.messages,
		Message{Role: RoleUser, Text: question},
		Message{Role: RoleModel, Text: reply},
	)
	return reply, true
}

// Messages returns a copy of the transcript.
func (c *Conversation) Messages() []Message {
	return append([]Message(nil), c.messages...)
}
