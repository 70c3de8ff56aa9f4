package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/folio/internal/domain/content"
)

type stubGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.reply, s.err
}

func TestBuildPromptIncludesProfile(t *testing.T) {
	t.Parallel()

	doc := content.Default()
	doc.Projects = []content.Project{
		{ID: "a", Title: "Alpha", Description: "First"},
		{ID: "b", Title: "Beta", Description: "Second"},
	}
	prompt := BuildPrompt(doc, "What do you build?")

	require.Contains(t, prompt, "Name: Alex Chen\n")
	require.Contains(t, prompt, "Role: "+strings.Join(doc.About.Roles, ", ")+"\n")
	require.Contains(t, prompt, "Bio: "+doc.About.Bio+"\n")
	require.Contains(t, prompt, "Projects: Alpha: First; Beta: Second\n")
	require.Contains(t, prompt, "If asked about contact info, provide: "+doc.About.Email+".")
	require.True(t, strings.HasSuffix(prompt, "\n\nUser Question: What do you build?"))
}

func TestAskReplies(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		gen  *stubGenerator
		want string
	}{
		{name: "answer", gen: &stubGenerator{reply: "Hello!"}, want: "Hello!"},
		{name: "empty answer", gen: &stubGenerator{}, want: EmptyReply},
		{name: "provider error", gen: &stubGenerator{err: errors.New("boom")}, want: OfflineReply},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			reply, ok := NewAssistant(tc.gen, nil).Ask(context.Background(), content.Default(), "hi")
			require.True(t, ok)
			require.Equal(t, tc.want, reply)
			require.Len(t, tc.gen.prompts, 1)
		})
	}
}

func TestAskWithoutProviderIsOffline(t *testing.T) {
	t.Parallel()

	reply, ok := NewAssistant(nil, nil).Ask(context.Background(), content.Default(), "hi")
	require.True(t, ok)
	require.Equal(t, OfflineReply, reply)
}

func TestBlankQuestionMakesNoCall(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{reply: "unused"}
	conversation := NewConversation(NewAssistant(gen, nil), content.Default())

	_, ok := conversation.Send(context.Background(), content.Default(), "   ")
	require.False(t, ok)
	require.Empty(t, gen.prompts)
	require.Len(t, conversation.Messages(), 1)
}

func TestConversationTranscript(t *testing.T) {
	t.Parallel()

	doc := content.Default()
	conversation := NewConversation(NewAssistant(&stubGenerator{reply: "I build web apps."}, nil), doc)

	reply, ok := conversation.Send(context.Background(), doc, "What do you do?")
	require.True(t, ok)
	require.Equal(t, "I build web apps.", reply)

	require.Equal(t, []Message{
		{Role: RoleModel, Text: doc.UI.Chat.WelcomeMessage},
		{Role: RoleUser, Text: "What do you do?"},
		{Role: RoleModel, Text: "I build web apps."},
	}, conversation.Messages())
}
