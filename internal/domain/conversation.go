package domain

import "time"

// GreetingText is the seeded bot message every fresh conversation starts with.
const GreetingText = "Hello! I am your hospital assistant. How can I help you today?"

// Message is one chat bubble. Messages are created only by the reducer,
// never mutated or deleted individually, and cleared only by a full reset.
type Message struct {
	ID        int64     `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Intent    Intent    `json:"intent,omitempty"`
	Entities  *Entities `json:"entities,omitempty"`
}

// ConversationState is the root aggregate: chat history plus the four record
// collections. Reports and vitals are ordered newest-first, appointments
// oldest-first; that asymmetry is part of the display contract.
type ConversationState struct {
	Messages     []Message        `json:"messages"`
	IsTyping     bool             `json:"isTyping"`
	Reports      []Report         `json:"reports"`
	Appointments []Appointment    `json:"appointments"`
	Vitals       []Vital          `json:"vitals"`
	Pregnancy    *PregnancyRecord `json:"pregnancy"`
}

// DefaultState returns the initial aggregate: one seeded bot greeting and
// empty collections. Corrupt persisted snapshots fall back to this.
func DefaultState(now time.Time) *ConversationState {
	return &ConversationState{
		Messages: []Message{
			{
				ID:        1,
				Sender:    SenderBot,
				Text:      GreetingText,
				Timestamp: now,
				Intent:    IntentGreeting,
			},
		},
		Reports:      []Report{},
		Appointments: []Appointment{},
		Vitals:       []Vital{},
	}
}

// Clone returns a deep copy. The reducer works on clones so callers can hold
// snapshots without racing against later dispatches.
func (s *ConversationState) Clone() *ConversationState {
	if s == nil {
		return nil
	}
	out := &ConversationState{
		Messages:     make([]Message, len(s.Messages)),
		IsTyping:     s.IsTyping,
		Reports:      make([]Report, len(s.Reports)),
		Appointments: make([]Appointment, len(s.Appointments)),
		Vitals:       make([]Vital, len(s.Vitals)),
	}
	copy(out.Messages, s.Messages)
	copy(out.Reports, s.Reports)
	copy(out.Appointments, s.Appointments)
	copy(out.Vitals, s.Vitals)
	if s.Pregnancy != nil {
		p := *s.Pregnancy
		p.Timeline = append([]Milestone(nil), s.Pregnancy.Timeline...)
		out.Pregnancy = &p
	}
	return out
}
