package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"mind-clone/internal/domain"
)

func storedProfile(id string, createdAt time.Time, analytical, creative float64) *domain.CognitiveProfile {
	return &domain.CognitiveProfile{
		ProfileID:         id,
		CreationTimestamp: createdAt,
		CognitiveTraits: domain.CognitiveTraits{
			AnalyticalTendency: analytical,
			CreativeTendency:   creative,
			IntuitiveTendency:  0.5,
			SystematicTendency: 0.5,
			DecisionConfidence: 0.5,
		},
	}
}

func TestMemoryProfileRepository_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProfileRepository()

	profile := storedProfile("p1", time.Now(), 0.8, 0.2)
	if err := repo.Save(ctx, profile); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ProfileID != "p1" {
		t.Fatalf("unexpected profile %+v", got)
	}

	if err := repo.Delete(ctx, "p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.GetByID(ctx, "p1"); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, "p1"); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound for double delete, got %v", err)
	}
}

func TestMemoryProfileRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProfileRepository()

	base := time.Now()
	for i, id := range []string{"old", "mid", "new"} {
		p := storedProfile(id, base.Add(time.Duration(i)*time.Minute), 0.5, 0.5)
		if err := repo.Save(ctx, p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	list, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected limit to apply, got %d profiles", len(list))
	}
	if list[0].ProfileID != "new" || list[1].ProfileID != "mid" {
		t.Fatalf("expected newest first, got %s, %s", list[0].ProfileID, list[1].ProfileID)
	}
}

func TestMemoryProfileRepository_FindSimilar(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProfileRepository()

	analytical := storedProfile("analytical", time.Now(), 0.9, 0.1)
	creative := storedProfile("creative", time.Now(), 0.1, 0.9)
	for _, p := range []*domain.CognitiveProfile{analytical, creative} {
		if err := repo.Save(ctx, p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	query := storedProfile("query", time.Now(), 0.85, 0.15).TraitVector()
	similar, err := repo.FindSimilar(ctx, query, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(similar) != 2 {
		t.Fatalf("expected 2 results, got %d", len(similar))
	}
	if similar[0].ProfileID != "analytical" {
		t.Fatalf("expected analytical profile nearest, got %s", similar[0].ProfileID)
	}

	one, err := repo.FindSimilar(ctx, query, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(one) != 1 {
		t.Fatalf("expected k to cap results, got %d", len(one))
	}
}

func TestMemoryProfileRepository_Hybrids(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProfileRepository()

	hybrid := &domain.HybridProfile{
		ProfileID:      "h1",
		SourceProfiles: []string{"p1", "p2"},
		UseCase:        "leadership",
	}
	if err := repo.SaveHybrid(ctx, hybrid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetHybridByID(ctx, "h1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.UseCase != "leadership" {
		t.Fatalf("unexpected hybrid %+v", got)
	}

	if _, err := repo.GetHybridByID(ctx, "missing"); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestCosineDistance(t *testing.T) {
	a := []float32{1, 0, 0}
	if d := cosineDistance(a, []float32{1, 0, 0}); d > 1e-6 {
		t.Fatalf("expected distance 0 for identical vectors, got %f", d)
	}
	if d := cosineDistance(a, []float32{0, 1, 0}); d != 1 {
		t.Fatalf("expected distance 1 for orthogonal vectors, got %f", d)
	}
	if d := cosineDistance(a, []float32{0, 0}); d != 2 {
		t.Fatalf("expected sentinel distance 2 for mismatched lengths, got %f", d)
	}
	if d := cosineDistance(a, []float32{0, 0, 0}); d != 2 {
		t.Fatalf("expected sentinel distance 2 for zero vector, got %f", d)
	}
}
