// Package assistant answers free-form catalog questions through a chat
// completion backend. Failures never surface as errors to callers; the
// librarian always replies with something, falling back to canned text
// when the backend is missing or unreachable.
package assistant

import (
	"context"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"libratech/internal/entity"
)

const (
	replyMissingKey  = "I'm sorry, my brain (API Key) is missing. Please contact the administrator."
	replyBackendDown = "I'm having trouble connecting to the library network right now. Please try again later."
	replyEmpty       = "I couldn't generate a response at this time."
)

// Completer is the slice of the chat completion client the librarian needs.
type Completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Librarian struct {
	client Completer
	model  string
}

// New builds a Librarian backed by the OpenAI API. An empty apiKey returns
// a Librarian with no client; Ask then answers with the missing-key reply.
func New(apiKey, model string) *Librarian {
	if model == "" {
		model = openai.GPT4oMini
	}
	if apiKey == "" {
		log.Printf("assistant: API key not set, librarian will reply with fallback text")
		return &Librarian{model: model}
	}
	return &Librarian{client: openai.NewClient(apiKey), model: model}
}

// NewWithCompleter wires an explicit backend, used by tests.
func NewWithCompleter(c Completer, model string) *Librarian {
	return &Librarian{client: c, model: model}
}

// Ask answers a patron's question grounded in the current catalog.
func (l *Librarian) Ask(ctx context.Context, query string, books []entity.Book) string {
	if l.client == nil {
		return replyMissingKey
	}

	resp, err := l.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: l.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction(books)},
			{Role: openai.ChatMessageRoleUser, Content: query},
		},
	})
	if err != nil {
		log.Printf("assistant: chat completion failed: %v", err)
		return replyBackendDown
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return replyEmpty
	}
	return resp.Choices[0].Message.Content
}

func systemInstruction(books []entity.Book) string {
	var catalog strings.Builder
	for _, b := range books {
		fmt.Fprintf(&catalog, "- %q by %s (Cat: %s, Loc: %s)\n", b.Title, b.Author, b.Category, b.Location)
	}

	return fmt.Sprintf(`You are a helpful, knowledgeable Library Assistant for "LibraTech".

Your goal is to help users find books, understand library rules, or discover new knowledge.

Here is the current catalog of books available in the library:
%s
If a user asks for a recommendation, use the catalog provided.
If the user asks about a book not in the catalog, you can mention general knowledge about it but specify we don't have it currently.
Keep answers concise, professional, and friendly.`, catalog.String())
}
