package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"mind-clone/internal/domain"
)

var ErrProfileNotFound = errors.New("cognitive profile not found")

// ProfileRepository persiste perfiles cognitivos. El perfil completo se
// guarda como JSONB; el vector de rasgos se materializa en una columna
// pgvector para busqueda de perfiles afines.
type ProfileRepository interface {
	Save(ctx context.Context, profile *domain.CognitiveProfile) error
	GetByID(ctx context.Context, profileID string) (*domain.CognitiveProfile, error)
	List(ctx context.Context, limit int) ([]*domain.CognitiveProfile, error)
	Delete(ctx context.Context, profileID string) error
	FindSimilar(ctx context.Context, vector []float32, k int) ([]*domain.CognitiveProfile, error)

	SaveHybrid(ctx context.Context, profile *domain.HybridProfile) error
	GetHybridByID(ctx context.Context, profileID string) (*domain.HybridProfile, error)
}

type PgProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

// Save hace upsert por profile_id: regenerar dentro del mismo segundo
// pisa el registro anterior.
func (r *PgProfileRepository) Save(ctx context.Context, profile *domain.CognitiveProfile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshaling cognitive profile: %w", err)
	}

	const query = `
		INSERT INTO cognitive_profiles (
			profile_id, profile_type, cognitive_signature, trait_vector, payload, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (profile_id) DO UPDATE SET
			profile_type = EXCLUDED.profile_type,
			cognitive_signature = EXCLUDED.cognitive_signature,
			trait_vector = EXCLUDED.trait_vector,
			payload = EXCLUDED.payload
	`
	_, err = r.pool.Exec(ctx, query,
		profile.ProfileID,
		profile.ProfileType,
		profile.CognitiveSignature,
		pgvector.NewVector(profile.TraitVector()),
		payload,
		profile.CreationTimestamp,
	)
	return err
}

func (r *PgProfileRepository) GetByID(ctx context.Context, profileID string) (*domain.CognitiveProfile, error) {
	const query = `SELECT payload FROM cognitive_profiles WHERE profile_id = $1`

	var payload []byte
	err := r.pool.QueryRow(ctx, query, profileID).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return unmarshalProfile(payload)
}

func (r *PgProfileRepository) List(ctx context.Context, limit int) ([]*domain.CognitiveProfile, error) {
	if limit <= 0 {
		limit = 50
	}
	const query = `
		SELECT payload FROM cognitive_profiles
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProfiles(rows)
}

func (r *PgProfileRepository) Delete(ctx context.Context, profileID string) error {
	const query = `DELETE FROM cognitive_profiles WHERE profile_id = $1`
	tag, err := r.pool.Exec(ctx, query, profileID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// FindSimilar ordena por distancia coseno sobre el vector de rasgos.
func (r *PgProfileRepository) FindSimilar(ctx context.Context, vector []float32, k int) ([]*domain.CognitiveProfile, error) {
	if k <= 0 {
		k = 5
	}
	const query = `
		SELECT payload FROM cognitive_profiles
		ORDER BY trait_vector <=> $1
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, pgvector.NewVector(vector), k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProfiles(rows)
}

func (r *PgProfileRepository) SaveHybrid(ctx context.Context, profile *domain.HybridProfile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshaling hybrid profile: %w", err)
	}

	const query = `
		INSERT INTO hybrid_profiles (
			profile_id, use_case, cognitive_signature, payload, created_at
		) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (profile_id) DO UPDATE SET
			use_case = EXCLUDED.use_case,
			cognitive_signature = EXCLUDED.cognitive_signature,
			payload = EXCLUDED.payload
	`
	_, err = r.pool.Exec(ctx, query,
		profile.ProfileID,
		profile.UseCase,
		profile.CognitiveSignature,
		payload,
		profile.CreationTimestamp,
	)
	return err
}

func (r *PgProfileRepository) GetHybridByID(ctx context.Context, profileID string) (*domain.HybridProfile, error) {
	const query = `SELECT payload FROM hybrid_profiles WHERE profile_id = $1`

	var payload []byte
	err := r.pool.QueryRow(ctx, query, profileID).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	var profile domain.HybridProfile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return nil, fmt.Errorf("unmarshaling hybrid profile: %w", err)
	}
	return &profile, nil
}

func scanProfiles(rows pgx.Rows) ([]*domain.CognitiveProfile, error) {
	var profiles []*domain.CognitiveProfile
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		profile, err := unmarshalProfile(payload)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

func unmarshalProfile(payload []byte) (*domain.CognitiveProfile, error) {
	var profile domain.CognitiveProfile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return nil, fmt.Errorf("unmarshaling cognitive profile: %w", err)
	}
	return &profile, nil
}
