package moodentry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/teampulse/teampulse-backend/internal/adapter/postgres/moodentry"
	"github.com/teampulse/teampulse-backend/internal/adapter/postgres/testhelper"
	"github.com/teampulse/teampulse-backend/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo + pool.
func newRepo(t *testing.T) (*moodentry.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return moodentry.New(pool), pool
}

// seedUser creates a user row and returns its ID.
func seedUser(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()
	return testhelper.SeedUser(t, pool, domain.UserRoleEmployee).ID
}

// buildEntry creates a minimal domain.MoodEntry suitable for Create.
func buildEntry(userID uuid.UUID, createdAt time.Time) *domain.MoodEntry {
	return &domain.MoodEntry{
		ID:           uuid.New(),
		UserID:       userID,
		Summary:      "shipped the release",
		Mood:         domain.MoodGood,
		EnergyLevel:  4,
		Complexity:   domain.ComplexityMedium,
		Satisfaction: 7.5,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func TestRepo_Create_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	userID := seedUser(t, pool)

	e := buildEntry(userID, now())
	created, err := repo.Create(ctx, e)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if created.ID != e.ID {
		t.Errorf("ID = %s, want %s", created.ID, e.ID)
	}
	if created.Mood != domain.MoodGood {
		t.Errorf("Mood = %s, want %s", created.Mood, domain.MoodGood)
	}
	if created.SentimentScore != nil {
		t.Errorf("new entry should have nil sentiment score, got %v", *created.SentimentScore)
	}
	if created.DeletedAt != nil {
		t.Error("new entry should not be deleted")
	}
}

func TestRepo_Create_UnknownUser(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	e := buildEntry(uuid.New(), now())
	_, err := repo.Create(ctx, e)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for FK violation, got: %v", err)
	}
}

func TestRepo_Create_InvalidEnergy_CheckViolation(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	userID := seedUser(t, pool)

	e := buildEntry(userID, now())
	e.EnergyLevel = 9
	_, err := repo.Create(ctx, e)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for check violation, got: %v", err)
	}
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestRepo_GetByID_SoftDeletedHidden(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	userID := seedUser(t, pool)

	e := buildEntry(userID, now())
	if _, err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.SoftDelete(ctx, e.ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	_, err := repo.GetByID(ctx, e.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for deleted entry, got: %v", err)
	}
}

func TestRepo_UpdateScore_SetsScore(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	userID := seedUser(t, pool)

	e := buildEntry(userID, now())
	if _, err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.UpdateScore(ctx, e.ID, 72.5); err != nil {
		t.Fatalf("UpdateScore: %v", err)
	}

	got, err := repo.GetByID(ctx, e.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.SentimentScore == nil || *got.SentimentScore != 72.5 {
		t.Fatalf("SentimentScore = %v, want 72.5", got.SentimentScore)
	}
}

func TestRepo_UpdateScore_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	err := repo.UpdateScore(context.Background(), uuid.New(), 50)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestRepo_UpdateScore_DeletedEntry(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	userID := seedUser(t, pool)

	e := buildEntry(userID, now())
	if _, err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.SoftDelete(ctx, e.ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	err := repo.UpdateScore(ctx, e.ID, 50)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for deleted entry, got: %v", err)
	}
}

func TestRepo_SoftDelete_Twice(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	userID := seedUser(t, pool)

	e := buildEntry(userID, now())
	if _, err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.SoftDelete(ctx, e.ID); err != nil {
		t.Fatalf("first SoftDelete: %v", err)
	}
	err := repo.SoftDelete(ctx, e.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got: %v", err)
	}
}

func TestRepo_QueryByUser_WindowAndOrder(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	userID := seedUser(t, pool)
	otherID := seedUser(t, pool)

	base := now().Add(-72 * time.Hour)

	// Three entries inside the window, created out of order.
	second := buildEntry(userID, base.Add(2*time.Hour))
	first := buildEntry(userID, base.Add(1*time.Hour))
	third := buildEntry(userID, base.Add(3*time.Hour))
	// Outside the window.
	outside := buildEntry(userID, base.Add(100*time.Hour))
	// Other user, inside the window.
	foreign := buildEntry(otherID, base.Add(90*time.Minute))
	// Deleted, inside the window.
	deleted := buildEntry(userID, base.Add(30*time.Minute))

	for _, e := range []*domain.MoodEntry{second, first, third, outside, foreign, deleted} {
		if _, err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if err := repo.SoftDelete(ctx, deleted.ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	got, err := repo.QueryByUser(ctx, userID, base, base.Add(4*time.Hour))
	if err != nil {
		t.Fatalf("QueryByUser: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	wantOrder := []uuid.UUID{first.ID, second.ID, third.ID}
	for i, want := range wantOrder {
		if got[i].ID != want {
			t.Errorf("got[%d].ID = %s, want %s", i, got[i].ID, want)
		}
	}
}

func TestRepo_QueryAll_IncludesAllUsers(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	u1 := seedUser(t, pool)
	u2 := seedUser(t, pool)

	base := now().Add(-1000 * time.Hour)

	e1 := buildEntry(u1, base.Add(time.Hour))
	e2 := buildEntry(u2, base.Add(2*time.Hour))
	for _, e := range []*domain.MoodEntry{e1, e2} {
		if _, err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.QueryAll(ctx, base, base.Add(3*time.Hour))
	if err != nil {
		t.Fatalf("QueryAll: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != e1.ID || got[1].ID != e2.ID {
		t.Errorf("unexpected order: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestRepo_QueryByUser_EmptyWindow(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	userID := seedUser(t, pool)

	base := now().Add(-5000 * time.Hour)
	got, err := repo.QueryByUser(ctx, userID, base, base.Add(time.Hour))
	if err != nil {
		t.Fatalf("QueryByUser: %v", err)
	}
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestRepo_Find_ByMoodAndComplexity(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	userID := seedUser(t, pool)

	base := now().Add(-2000 * time.Hour)

	match := buildEntry(userID, base.Add(time.Hour))
	match.Mood = domain.MoodExcited
	match.Complexity = domain.ComplexityHard

	wrongMood := buildEntry(userID, base.Add(2*time.Hour))
	wrongMood.Mood = domain.MoodSad
	wrongMood.Complexity = domain.ComplexityHard

	wrongComplexity := buildEntry(userID, base.Add(3*time.Hour))
	wrongComplexity.Mood = domain.MoodExcited
	wrongComplexity.Complexity = domain.ComplexityEasy

	for _, e := range []*domain.MoodEntry{match, wrongMood, wrongComplexity} {
		if _, err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	mood := domain.MoodExcited
	complexity := domain.ComplexityHard
	to := base.Add(4 * time.Hour)
	got, err := repo.Find(ctx, moodentry.Filter{
		UserID:     &userID,
		Mood:       &mood,
		Complexity: &complexity,
		From:       &base,
		To:         &to,
	})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].ID != match.ID {
		t.Errorf("got %s, want %s", got[0].ID, match.ID)
	}
}

func TestRepo_Find_UnscoredOnly(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	userID := seedUser(t, pool)

	base := now().Add(-4000 * time.Hour)

	scored := buildEntry(userID, base.Add(time.Hour))
	unscored := buildEntry(userID, base.Add(2*time.Hour))
	for _, e := range []*domain.MoodEntry{scored, unscored} {
		if _, err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if err := repo.UpdateScore(ctx, scored.ID, 80); err != nil {
		t.Fatalf("UpdateScore: %v", err)
	}

	to := base.Add(3 * time.Hour)
	got, err := repo.Find(ctx, moodentry.Filter{
		UserID:   &userID,
		From:     &base,
		To:       &to,
		Unscored: true,
	})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].ID != unscored.ID {
		t.Errorf("got %s, want %s", got[0].ID, unscored.ID)
	}
}

func TestRepo_Find_LimitClamped(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	userID := seedUser(t, pool)

	base := now().Add(-3000 * time.Hour)
	for i := range 5 {
		e := buildEntry(userID, base.Add(time.Duration(i)*time.Minute))
		if _, err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	to := base.Add(time.Hour)
	got, err := repo.Find(ctx, moodentry.Filter{
		UserID: &userID,
		From:   &base,
		To:     &to,
		Limit:  3,
	})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	// Newest first.
	if !got[0].CreatedAt.After(got[1].CreatedAt) {
		t.Error("Find results should be ordered newest first")
	}
}
