// Package classifier turns free user text into a structured command: an
// intent from the documented set, its entities, and a bot reply.
//
// Classification is two-tiered. The rule tier is synchronous, does no I/O,
// and always runs first; the remote tier asks a completion service only when
// no rule fired, and any failure there (network, timeout, garbage output)
// degrades to a canned offline reply. Classify therefore never returns an
// error: the worst outcome is a GREETING that asks for more detail.
package classifier

import (
	"context"
	"time"

	"github.com/cityhospital/assistant/internal/domain"
	"github.com/cityhospital/assistant/internal/observability"
)

// DefaultTimeout bounds the remote tier. The contract is a bounded fallback,
// not a retry: one attempt, then the offline reply.
const DefaultTimeout = 10 * time.Second

const offlineReply = "I'm currently offline, but I can help you view reports if you provide the Report ID (e.g., REP001)."

// Result is the classifier's only output shape. Entities not relevant to
// the intent stay nil.
type Result struct {
	Intent   domain.Intent   `json:"intent"`
	Entities domain.Entities `json:"entities"`
	Reply    string          `json:"reply"`
}

type Classifier struct {
	llm     domain.LLMClient // nil means no credential: rule tier only
	timeout time.Duration
}

// New builds a classifier. A nil llm selects the offline mode, where the
// rule tier answers everything and missing record ids default to
// REP001/APP001/VIT001 placeholders.
func New(llm domain.LLMClient, timeout time.Duration) *Classifier {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Classifier{llm: llm, timeout: timeout}
}

// Classify maps raw text to a Result. It never fails: malformed input, a
// dead network, or model garbage all end in a usable fallback.
func (c *Classifier) Classify(ctx context.Context, message string) Result {
	if c.llm == nil {
		res, _ := classifyLocal(message, true)
		return res
	}

	if res, ok := classifyLocal(message, false); ok {
		return res
	}

	return c.classifyRemote(ctx, message)
}

func (c *Classifier) classifyRemote(ctx context.Context, message string) Result {
	log := observability.LoggerFromContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.llm.GenerateContent(ctx, systemPrompt, message)
	if err != nil {
		log.Warn("remote classification failed, using offline fallback", "error", err)
		return offlineFallback()
	}

	res, err := parseRemote(text)
	if err != nil {
		log.Warn("unusable model response, using offline fallback", "error", err)
		return offlineFallback()
	}
	return res
}

func offlineFallback() Result {
	return Result{Intent: domain.IntentGreeting, Reply: offlineReply}
}
