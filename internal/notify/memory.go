package notify

import (
	"context"
	"sync"
)

// MemoryMailer keeps all sent messages in memory.
//
// If Err is set, Send fails with it and does not record the message.
type MemoryMailer struct {
	Err error

	mu       sync.Mutex
	messages []Message
}

func (m *MemoryMailer) Send(_ context.Context, msg Message) error {
	if err := validate(msg); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	m.messages = append(m.messages, msg)
	return nil
}

// Messages returns a copy of all messages sent so far.
func (m *MemoryMailer) Messages() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	messages := make([]Message, len(m.messages))
	copy(messages, m.messages)
	return messages
}
