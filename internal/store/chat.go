package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/example/lessence/internal/models"
)

// Greeting seeds every new concierge transcript.
const Greeting = "Bonjour. I am your personal scent concierge. Tell me your mood, a memory, or a desire, and I shall craft a recommendation for you."

// ErrRecommendationPending is returned by Begin while a previous
// submission for the same session is still awaiting its reply.
var ErrRecommendationPending = errors.New("a recommendation is already in progress")

// ChatStore holds per-session concierge transcripts. Messages are
// append-only and never mutated. The awaiting-response state is
// explicit: Begin transitions idle -> awaiting and hands out a request
// token, Complete applies the reply only if that token is still the
// active request, so a stale response is discarded rather than
// appended.
type ChatStore struct {
	mu       sync.Mutex
	sessions map[string]*chatSession
}

type chatSession struct {
	messages []models.ChatMessage
	pending  string
}

// NewChatStore constructs an empty ChatStore.
func NewChatStore() *ChatStore {
	return &ChatStore{sessions: make(map[string]*chatSession)}
}

// session returns the transcript for the session, seeding the greeting
// on first touch. Caller must hold the lock.
func (s *ChatStore) session(sessionID string) *chatSession {
	cs, ok := s.sessions[sessionID]
	if !ok {
		cs = &chatSession{
			messages: []models.ChatMessage{{Role: models.RoleModel, Text: Greeting}},
		}
		s.sessions[sessionID] = cs
	}
	return cs
}

// Messages returns the session's transcript in order.
func (s *ChatStore) Messages(sessionID string) []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs := s.session(sessionID)
	out := make([]models.ChatMessage, len(cs.messages))
	copy(out, cs.messages)
	return out
}

// Begin appends the user's message and marks the session as awaiting a
// reply. It returns the request token to present to Complete, or
// ErrRecommendationPending if a previous request has not finished.
func (s *ChatStore) Begin(sessionID, text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs := s.session(sessionID)
	if cs.pending != "" {
		return "", ErrRecommendationPending
	}

	cs.messages = append(cs.messages, models.ChatMessage{Role: models.RoleUser, Text: text})
	cs.pending = uuid.NewString()
	return cs.pending, nil
}

// Complete appends the model reply and returns the session to idle. It
// reports false, discarding the reply, when token no longer identifies
// the active request.
func (s *ChatStore) Complete(sessionID, token, reply string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs := s.session(sessionID)
	if token == "" || cs.pending != token {
		return false
	}

	cs.messages = append(cs.messages, models.ChatMessage{Role: models.RoleModel, Text: reply})
	cs.pending = ""
	return true
}
