package repository

import (
	"context"
	"math"
	"sort"
	"sync"

	"mind-clone/internal/domain"
)

// MemoryProfileRepository es la implementacion en memoria de
// ProfileRepository, usada por el CLI y los tests. FindSimilar calcula
// distancia coseno igual que el indice pgvector.
type MemoryProfileRepository struct {
	mu       sync.Mutex
	profiles map[string]*domain.CognitiveProfile
	hybrids  map[string]*domain.HybridProfile
}

func NewMemoryProfileRepository() *MemoryProfileRepository {
	return &MemoryProfileRepository{
		profiles: make(map[string]*domain.CognitiveProfile),
		hybrids:  make(map[string]*domain.HybridProfile),
	}
}

func (r *MemoryProfileRepository) Save(_ context.Context, profile *domain.CognitiveProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *profile
	r.profiles[profile.ProfileID] = &cp
	return nil
}

func (r *MemoryProfileRepository) GetByID(_ context.Context, profileID string) (*domain.CognitiveProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[profileID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	cp := *profile
	return &cp, nil
}

func (r *MemoryProfileRepository) List(_ context.Context, limit int) ([]*domain.CognitiveProfile, error) {
	if limit <= 0 {
		limit = 50
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.CognitiveProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreationTimestamp.After(out[j].CreationTimestamp)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryProfileRepository) Delete(_ context.Context, profileID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[profileID]; !ok {
		return ErrProfileNotFound
	}
	delete(r.profiles, profileID)
	return nil
}

func (r *MemoryProfileRepository) FindSimilar(_ context.Context, vector []float32, k int) ([]*domain.CognitiveProfile, error) {
	if k <= 0 {
		k = 5
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	type scored struct {
		profile  *domain.CognitiveProfile
		distance float64
	}
	candidates := make([]scored, 0, len(r.profiles))
	for _, p := range r.profiles {
		cp := *p
		candidates = append(candidates, scored{
			profile:  &cp,
			distance: cosineDistance(vector, p.TraitVector()),
		})
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})
	if len(candidates) > k {
		candidates = candidates[:k]
	}

	out := make([]*domain.CognitiveProfile, len(candidates))
	for i, c := range candidates {
		out[i] = c.profile
	}
	return out, nil
}

func (r *MemoryProfileRepository) SaveHybrid(_ context.Context, profile *domain.HybridProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *profile
	r.hybrids[profile.ProfileID] = &cp
	return nil
}

func (r *MemoryProfileRepository) GetHybridByID(_ context.Context, profileID string) (*domain.HybridProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.hybrids[profileID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	cp := *profile
	return &cp, nil
}

func cosineDistance(a, b []float32) float64 {
	if len(a) != len(b) {
		return 2
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 2
	}
	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}
