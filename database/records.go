package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"foundryos/backend/logger"
	"foundryos/backend/models"
)

var ErrRecordNotFound = errors.New("onboarding record not found")

// RecordStore persists finalized onboarding records and the reflections
// founders submit afterwards.
type RecordStore interface {
	SaveRecord(ctx context.Context, rec models.OnboardingRecord) error
	GetRecord(ctx context.Context, founderID string) (models.OnboardingRecord, error)
	SaveReflection(ctx context.Context, ref *models.Reflection) error
	ListReflections(ctx context.Context, founderID string, limit, offset int) ([]models.Reflection, error)
}

type PgRecordStore struct {
	pool *pgxpool.Pool
}

func NewPgRecordStore(pool *pgxpool.Pool) *PgRecordStore {
	return &PgRecordStore{pool: pool}
}

func (s *PgRecordStore) SaveRecord(ctx context.Context, rec models.OnboardingRecord) error {
	if !rec.IsFinalized() {
		return errors.New("record is not finalized")
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO onboarding_records(founder_id, record, completed_at) VALUES($1, $2::jsonb, $3)`,
		rec.FounderID, string(b), *rec.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	logger.FromContext(ctx).Debug("record stored", zap.String("founder_id", rec.FounderID))
	return nil
}

func (s *PgRecordStore) GetRecord(ctx context.Context, founderID string) (models.OnboardingRecord, error) {
	var raw string
	err := s.pool.QueryRow(ctx, `SELECT record::text FROM onboarding_records WHERE founder_id=$1`, founderID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.OnboardingRecord{}, ErrRecordNotFound
	}
	if err != nil {
		return models.OnboardingRecord{}, fmt.Errorf("select record: %w", err)
	}
	var rec models.OnboardingRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return models.OnboardingRecord{}, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}

func (s *PgRecordStore) SaveReflection(ctx context.Context, ref *models.Reflection) error {
	err := s.pool.QueryRow(ctx, `
        INSERT INTO mission_reflections(founder_id, weekly_focus, reflection, prayer_intention, guidance, alignment_score)
        VALUES($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at`,
		ref.FounderID, ref.WeeklyFocus, ref.Reflection, ref.PrayerIntention, ref.Guidance, ref.AlignmentScore,
	).Scan(&ref.ID, &ref.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert reflection: %w", err)
	}
	return nil
}

func (s *PgRecordStore) ListReflections(ctx context.Context, founderID string, limit, offset int) ([]models.Reflection, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT id, founder_id, weekly_focus, reflection, prayer_intention, guidance, alignment_score, created_at
        FROM mission_reflections WHERE founder_id=$1
        ORDER BY created_at DESC, id DESC
        LIMIT $2 OFFSET $3`, founderID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select reflections: %w", err)
	}
	defer rows.Close()
	out := []models.Reflection{}
	for rows.Next() {
		var r models.Reflection
		if err := rows.Scan(&r.ID, &r.FounderID, &r.WeeklyFocus, &r.Reflection, &r.PrayerIntention, &r.Guidance, &r.AlignmentScore, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reflection: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// MemoryRecordStore backs local development and tests when no database is
// configured.
type MemoryRecordStore struct {
	mu          sync.Mutex
	records     map[string]models.OnboardingRecord
	reflections map[string][]models.Reflection
	nextID      int64
	now         func() time.Time
}

func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{
		records:     make(map[string]models.OnboardingRecord),
		reflections: make(map[string][]models.Reflection),
		now:         time.Now,
	}
}

func (s *MemoryRecordStore) SaveRecord(ctx context.Context, rec models.OnboardingRecord) error {
	if !rec.IsFinalized() {
		return errors.New("record is not finalized")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[rec.FounderID]; ok {
		return fmt.Errorf("record %s already exists", rec.FounderID)
	}
	s.records[rec.FounderID] = rec.Clone()
	logger.FromContext(ctx).Debug("record stored in memory", zap.String("founder_id", rec.FounderID))
	return nil
}

func (s *MemoryRecordStore) GetRecord(_ context.Context, founderID string) (models.OnboardingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[founderID]
	if !ok {
		return models.OnboardingRecord{}, ErrRecordNotFound
	}
	return rec.Clone(), nil
}

func (s *MemoryRecordStore) SaveReflection(_ context.Context, ref *models.Reflection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[ref.FounderID]; !ok {
		return ErrRecordNotFound
	}
	s.nextID++
	ref.ID = s.nextID
	ref.CreatedAt = s.now().UTC()
	s.reflections[ref.FounderID] = append(s.reflections[ref.FounderID], *ref)
	return nil
}

func (s *MemoryRecordStore) ListReflections(_ context.Context, founderID string, limit, offset int) ([]models.Reflection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := slices.Clone(s.reflections[founderID])
	slices.Reverse(all)
	out := []models.Reflection{}
	for i := offset; i < len(all) && len(out) < limit; i++ {
		out = append(out, all[i])
	}
	return out, nil
}
