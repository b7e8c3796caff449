package llm

import "context"

// MockLLM is a canned domain.LLMClient for local mode and tests. Response
// and Err can be set to script the remote tier's behavior.
type MockLLM struct {
	Response string
	Err      error
}

func NewMockLLM() *MockLLM {
	return &MockLLM{
		Response: `{"intent": "HELP", "entities": {}, "reply": "I can help with reports, appointments, vitals, and pregnancy tracking."}`,
	}
}

func (m *MockLLM) GenerateContent(ctx context.Context, system, user string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
