// Package conversation runs the chat round-trip: user message in, classified
// bot reply out, with the typing flag toggled around the classification call.
package conversation

import (
	"context"
	"errors"
	"strings"

	"github.com/cityhospital/assistant/internal/app/classifier"
	"github.com/cityhospital/assistant/internal/app/reducer"
	"github.com/cityhospital/assistant/internal/app/store"
	"github.com/cityhospital/assistant/internal/domain"
	"github.com/cityhospital/assistant/internal/observability"
)

var ErrEmptyMessage = errors.New("message text is empty")

type Service struct {
	classifier *classifier.Classifier
	store      *store.Store
}

func NewService(cls *classifier.Classifier, st *store.Store) *Service {
	return &Service{classifier: cls, store: st}
}

type SendMessageOutput struct {
	UserMessage domain.Message
	BotMessage  domain.Message
}

// SendMessage appends the user's message, classifies it, and appends the bot
// reply. Classification cannot fail (the classifier degrades internally), so
// the only error here is empty input. The typing flag is raised for the
// duration of the round-trip; consumers reading state concurrently use it to
// gate their "bot is typing" indicator.
func (s *Service) SendMessage(ctx context.Context, text string) (*SendMessageOutput, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	log := observability.LoggerFromContext(ctx)
	log.Info("chat message received", "length", len(text))

	st := s.store.Dispatch(ctx, reducer.AddMessage{Sender: domain.SenderUser, Text: text})
	userMsg := st.Messages[len(st.Messages)-1]

	s.store.Dispatch(ctx, reducer.SetTyping{Typing: true})

	result := s.classifier.Classify(ctx, text)
	log.Info("message classified", "intent", result.Intent)

	st = s.store.Dispatch(ctx, reducer.AddMessage{
		Sender:   domain.SenderBot,
		Text:     result.Reply,
		Intent:   result.Intent,
		Entities: &result.Entities,
	})
	botMsg := st.Messages[len(st.Messages)-1]

	s.store.Dispatch(ctx, reducer.SetTyping{Typing: false})

	return &SendMessageOutput{UserMessage: userMsg, BotMessage: botMsg}, nil
}

// Reset replaces the whole conversation with the default initial state.
func (s *Service) Reset(ctx context.Context) *domain.ConversationState {
	observability.LoggerFromContext(ctx).Info("conversation reset")
	return s.store.Dispatch(ctx, reducer.ResetConversation{})
}

// State returns a snapshot of the aggregate for rendering.
func (s *Service) State(ctx context.Context) *domain.ConversationState {
	return s.store.State()
}
