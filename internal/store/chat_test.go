package store

import (
	"errors"
	"testing"

	"github.com/example/lessence/internal/models"
)

func TestChatSeedsGreeting(t *testing.T) {
	chats := NewChatStore()

	messages := chats.Messages(testSession)
	if len(messages) != 1 {
		t.Fatalf("Expected 1 seeded message, got %d", len(messages))
	}
	if messages[0].Role != models.RoleModel {
		t.Errorf("Role = %q, want %q", messages[0].Role, models.RoleModel)
	}
	if messages[0].Text != Greeting {
		t.Errorf("Text = %q, want the greeting", messages[0].Text)
	}
}

func TestChatBeginComplete(t *testing.T) {
	chats := NewChatStore()

	token, err := chats.Begin(testSession, "I feel nostalgic")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}

	if !chats.Complete(testSession, token, "Try warm amber.") {
		t.Fatal("Complete with the active token should apply")
	}

	messages := chats.Messages(testSession)
	if len(messages) != 3 {
		t.Fatalf("Expected greeting + user + model, got %d messages", len(messages))
	}
	if messages[1].Role != models.RoleUser || messages[1].Text != "I feel nostalgic" {
		t.Errorf("User message = %+v", messages[1])
	}
	if messages[2].Role != models.RoleModel || messages[2].Text != "Try warm amber." {
		t.Errorf("Model message = %+v", messages[2])
	}
}

func TestChatRejectsConcurrentSubmission(t *testing.T) {
	chats := NewChatStore()

	token, err := chats.Begin(testSession, "first")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}

	if _, err := chats.Begin(testSession, "second"); !errors.Is(err, ErrRecommendationPending) {
		t.Fatalf("Expected ErrRecommendationPending, got %v", err)
	}

	// Another session is unaffected.
	if _, err := chats.Begin("session-other", "hello"); err != nil {
		t.Fatalf("Begin for a different session: %v", err)
	}

	chats.Complete(testSession, token, "reply")
	if _, err := chats.Begin(testSession, "third"); err != nil {
		t.Fatalf("Begin after Complete: %v", err)
	}
}

func TestChatDiscardsStaleCompletion(t *testing.T) {
	chats := NewChatStore()

	token, err := chats.Begin(testSession, "mood")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if !chats.Complete(testSession, token, "fresh reply") {
		t.Fatal("Active completion should apply")
	}

	before := len(chats.Messages(testSession))
	if chats.Complete(testSession, token, "stale reply") {
		t.Fatal("Stale completion should be discarded")
	}
	if got := len(chats.Messages(testSession)); got != before {
		t.Fatalf("Stale completion appended a message: %d -> %d", before, got)
	}
}
