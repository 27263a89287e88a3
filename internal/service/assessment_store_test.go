package service

import (
	"context"
	"errors"
	"testing"

	"mind-clone/internal/domain"
)

func TestMemoryAssessmentStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryAssessmentStore()

	state := &domain.AssessmentState{
		SessionID: "s1",
		Phase:     domain.PhasePersonality,
	}
	if err := store.Save(ctx, state); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SessionID != "s1" || got.Phase != domain.PhasePersonality {
		t.Fatalf("unexpected state: %+v", got)
	}

	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get(ctx, "s1"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestMemoryAssessmentStore_MissingSession(t *testing.T) {
	store := NewMemoryAssessmentStore()
	if _, err := store.Get(context.Background(), "nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestMemoryAssessmentStore_RejectsEmptySessionID(t *testing.T) {
	store := NewMemoryAssessmentStore()
	if err := store.Save(context.Background(), &domain.AssessmentState{}); err == nil {
		t.Fatal("expected error for state without session id")
	}
}

func TestMemoryAssessmentStore_CopyIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryAssessmentStore()

	state := &domain.AssessmentState{SessionID: "s1", Phase: domain.PhasePersonality}
	if err := store.Save(ctx, state); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Mutar el original no debe afectar lo guardado.
	state.Phase = domain.PhaseComplete
	got, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Phase != domain.PhasePersonality {
		t.Fatalf("stored state must be isolated from caller, got phase %s", got.Phase)
	}

	// Mutar lo leido tampoco debe afectar el store.
	got.Phase = domain.PhaseComplete
	again, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Phase != domain.PhasePersonality {
		t.Fatalf("reads must return copies, got phase %s", again.Phase)
	}
}
