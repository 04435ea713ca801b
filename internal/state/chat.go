package state

import (
	"slices"
	"time"

	"github.com/MKhiriev/go-agent-console/models"
)

// ChatState maps a visitor session id to its transcript.
type ChatState map[string]models.ChatTranscript

// Chat is the store of chat transcripts.
var Chat = Define("chat", func() ChatState { return ChatState{} })

// ChatStore is the typed view of the chat store used by the chat view.
type ChatStore struct {
	store *Store[ChatState]
	now   func() time.Time
}

// UseChat returns the chat store of reg.
func UseChat(reg *Registry) (*ChatStore, error) {
	s, err := Chat.Use(reg)
	if err != nil {
		return nil, err
	}
	return &ChatStore{store: s, now: time.Now}, nil
}

// Transcript returns a copy of the messages of session.
func (c *ChatStore) Transcript(session string) models.ChatTranscript {
	var out models.ChatTranscript
	c.store.View(func(s ChatState) {
		out = slices.Clone(s[session])
	})
	return out
}

// Append adds msg to the transcript of session. A zero At is set to now.
func (c *ChatStore) Append(session string, msg models.ChatMessage) error {
	if session == "" {
		return ErrEmptySession
	}
	if msg.At.IsZero() {
		msg.At = c.now()
	}

	c.store.Patch(func(s *ChatState) {
		(*s)[session] = append((*s)[session], msg)
	})
	return nil
}

// Clear removes the transcript of session.
func (c *ChatStore) Clear(session string) {
	c.store.Patch(func(s *ChatState) {
		delete(*s, session)
	})
}

// Sessions returns the number of sessions with a transcript.
func (c *ChatStore) Sessions() int {
	var n int
	c.store.View(func(s ChatState) { n = len(s) })
	return n
}
