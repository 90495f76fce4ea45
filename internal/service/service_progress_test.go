package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lingualeap/lingualeap/internal/logger"
	"github.com/lingualeap/lingualeap/internal/mock"
	"github.com/lingualeap/lingualeap/internal/store"
	"github.com/lingualeap/lingualeap/models"
)

type progressMocks struct {
	lessons   *mock.MockLessonRepository
	exercises *mock.MockExerciseRepository
	progress  *mock.MockProgressRepository
	stats     *mock.MockStatsRepository
	streaks   *mock.MockStreakRepository
}

// newTestProgressSvc builds a progressService over mocked repositories with a
// fixed clock and a 36-hour streak window.
func newTestProgressSvc(t *testing.T, ctrl *gomock.Controller) (*progressService, progressMocks) {
	t.Helper()

	m := progressMocks{
		lessons:   mock.NewMockLessonRepository(ctrl),
		exercises: mock.NewMockExerciseRepository(ctrl),
		progress:  mock.NewMockProgressRepository(ctrl),
		stats:     mock.NewMockStatsRepository(ctrl),
		streaks:   mock.NewMockStreakRepository(ctrl),
	}

	svc := &progressService{
		lessons:     m.lessons,
		exercises:   m.exercises,
		progress:    m.progress,
		stats:       m.stats,
		streaks:     m.streaks,
		streakReset: 36 * time.Hour,
		now:         func() time.Time { return testClock },
		logger:      logger.Nop(),
	}

	return svc, m
}

func TestProgressService_SubmitAnswer_Correct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestProgressSvc(t, ctrl)
	ctx := context.Background()

	exercise := models.Exercise{ID: 3, CorrectAnswer: "hola", XPReward: 5}
	m.exercises.EXPECT().FindByID(ctx, int64(3)).Return(exercise, nil)
	m.stats.EXPECT().RecordAnswer(ctx, int64(7), true).Return(nil)
	m.stats.EXPECT().AddXP(ctx, int64(7), 5).Return(nil)

	// Case and surrounding whitespace are ignored when grading.
	correct, err := svc.SubmitAnswer(ctx, 7, 3, "  Hola ")
	require.NoError(t, err)
	assert.True(t, correct)
}

func TestProgressService_SubmitAnswer_Incorrect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestProgressSvc(t, ctrl)
	ctx := context.Background()

	exercise := models.Exercise{ID: 3, CorrectAnswer: "hola", XPReward: 5}
	m.exercises.EXPECT().FindByID(ctx, int64(3)).Return(exercise, nil)
	// The incorrect counter moves, no XP is awarded.
	m.stats.EXPECT().RecordAnswer(ctx, int64(7), false).Return(nil)

	correct, err := svc.SubmitAnswer(ctx, 7, 3, "adios")
	require.NoError(t, err)
	assert.False(t, correct)
}

func TestProgressService_CompleteLesson_FirstCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestProgressSvc(t, ctrl)
	ctx := context.Background()

	lesson := models.Lesson{ID: 5, XPReward: 10}
	m.lessons.EXPECT().FindByID(ctx, int64(5)).Return(lesson, nil)
	m.progress.EXPECT().FindByUserAndLesson(ctx, int64(7), int64(5)).
		Return(models.UserProgress{}, store.ErrNoProgressWasFound)

	m.progress.EXPECT().Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.UserProgress) error {
			assert.True(t, p.Completed)
			require.NotNil(t, p.CompletionDate)
			assert.Equal(t, testClock, *p.CompletionDate)
			assert.Equal(t, 85, p.Score)
			return nil
		})
	m.stats.EXPECT().AddXP(ctx, int64(7), 10).Return(nil)
	m.stats.EXPECT().RecordLesson(ctx, int64(7)).Return(nil)
	m.streaks.EXPECT().FindByUser(ctx, int64(7)).Return(models.UserStreak{UserID: 7}, nil)
	m.streaks.EXPECT().Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.UserStreak) error {
			assert.Equal(t, 1, s.CurrentStreak)
			assert.Equal(t, 1, s.MaxStreak)
			require.NotNil(t, s.LastActivityDate)
			assert.Equal(t, testClock, *s.LastActivityDate)
			return nil
		})

	err := svc.CompleteLesson(ctx, 7, 5, 85)
	assert.NoError(t, err)
}

func TestProgressService_CompleteLesson_RepeatKeepsBestScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestProgressSvc(t, ctrl)
	ctx := context.Background()

	firstCompletion := testClock.Add(-48 * time.Hour)
	existing := models.UserProgress{
		ID: 11, UserID: 7, LessonID: 5,
		Completed: true, CompletionDate: &firstCompletion, Score: 60,
	}

	m.lessons.EXPECT().FindByID(ctx, int64(5)).Return(models.Lesson{ID: 5, XPReward: 10}, nil)
	m.progress.EXPECT().FindByUserAndLesson(ctx, int64(7), int64(5)).Return(existing, nil)

	// Only the score improves; the original completion date stays and no
	// XP, lesson counter, or streak calls happen.
	m.progress.EXPECT().Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.UserProgress) error {
			assert.Equal(t, 90, p.Score)
			assert.Equal(t, firstCompletion, *p.CompletionDate)
			return nil
		})

	err := svc.CompleteLesson(ctx, 7, 5, 90)
	assert.NoError(t, err)
}

func TestProgressService_CompleteLesson_RepeatLowerScoreUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestProgressSvc(t, ctrl)
	ctx := context.Background()

	firstCompletion := testClock.Add(-48 * time.Hour)
	existing := models.UserProgress{
		ID: 11, UserID: 7, LessonID: 5,
		Completed: true, CompletionDate: &firstCompletion, Score: 60,
	}

	m.lessons.EXPECT().FindByID(ctx, int64(5)).Return(models.Lesson{ID: 5}, nil)
	m.progress.EXPECT().FindByUserAndLesson(ctx, int64(7), int64(5)).Return(existing, nil)
	m.progress.EXPECT().Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.UserProgress) error {
			assert.Equal(t, 60, p.Score)
			return nil
		})

	err := svc.CompleteLesson(ctx, 7, 5, 40)
	assert.NoError(t, err)
}

func TestProgressService_AdvanceStreak(t *testing.T) {
	yesterday := testClock.Add(-24 * time.Hour)
	earlierToday := testClock.Add(-2 * time.Hour)
	threeDaysAgo := testClock.Add(-72 * time.Hour)

	tests := []struct {
		name        string
		existing    models.UserStreak
		wantCurrent int
		wantMax     int
	}{
		{
			name:        "first activity starts a streak",
			existing:    models.UserStreak{UserID: 7},
			wantCurrent: 1,
			wantMax:     1,
		},
		{
			name: "activity within window extends the streak",
			existing: models.UserStreak{
				UserID: 7, CurrentStreak: 3, MaxStreak: 5, LastActivityDate: &yesterday,
			},
			wantCurrent: 4,
			wantMax:     5,
		},
		{
			name: "second activity on the same day changes nothing",
			existing: models.UserStreak{
				UserID: 7, CurrentStreak: 3, MaxStreak: 5, LastActivityDate: &earlierToday,
			},
			wantCurrent: 3,
			wantMax:     5,
		},
		{
			name: "activity past the window resets the streak",
			existing: models.UserStreak{
				UserID: 7, CurrentStreak: 9, MaxStreak: 9, LastActivityDate: &threeDaysAgo,
			},
			wantCurrent: 1,
			wantMax:     9,
		},
		{
			name: "extension past the old record raises the record",
			existing: models.UserStreak{
				UserID: 7, CurrentStreak: 5, MaxStreak: 5, LastActivityDate: &yesterday,
			},
			wantCurrent: 6,
			wantMax:     6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newTestProgressSvc(t, ctrl)
			ctx := context.Background()

			m.streaks.EXPECT().FindByUser(ctx, int64(7)).Return(tt.existing, nil)
			m.streaks.EXPECT().Save(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, s models.UserStreak) error {
					assert.Equal(t, tt.wantCurrent, s.CurrentStreak)
					assert.Equal(t, tt.wantMax, s.MaxStreak)
					require.NotNil(t, s.LastActivityDate)
					assert.Equal(t, testClock, *s.LastActivityDate)
					return nil
				})

			err := svc.advanceStreak(ctx, 7)
			assert.NoError(t, err)
		})
	}
}

func TestProgressService_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestProgressSvc(t, ctrl)
	ctx := context.Background()

	stats := models.UserStats{UserID: 7, TotalXP: 120, LessonsCompleted: 4}
	streak := models.UserStreak{UserID: 7, CurrentStreak: 3, MaxStreak: 6}
	progress := []models.UserProgress{{UserID: 7, LessonID: 5, Completed: true}}

	m.stats.EXPECT().FindByUser(ctx, int64(7)).Return(stats, nil)
	m.streaks.EXPECT().FindByUser(ctx, int64(7)).Return(streak, nil)
	m.progress.EXPECT().ListByUser(ctx, int64(7)).Return(progress, nil)

	data, err := svc.Dashboard(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, stats, data.Stats)
	assert.Equal(t, streak, data.Streak)
	assert.Equal(t, progress, data.Progress)
}

func TestProgressService_Dashboard_MissingCountersAreZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestProgressSvc(t, ctrl)
	ctx := context.Background()

	// Counter rows may be missing for accounts created before the rows
	// were introduced; the dashboard shows zeroes instead of failing.
	m.stats.EXPECT().FindByUser(ctx, int64(7)).Return(models.UserStats{}, store.ErrNoStatsWereFound)
	m.streaks.EXPECT().FindByUser(ctx, int64(7)).Return(models.UserStreak{}, store.ErrNoStreakWasFound)
	m.progress.EXPECT().ListByUser(ctx, int64(7)).Return(nil, nil)

	data, err := svc.Dashboard(ctx, 7)
	require.NoError(t, err)

	assert.Zero(t, data.Stats.TotalXP)
	assert.Zero(t, data.Streak.CurrentStreak)
	assert.Empty(t, data.Progress)
}
