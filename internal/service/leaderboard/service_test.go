package leaderboard

import (
	"context"
	"testing"

	"richcase_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[int]*model.User
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *model.User) (int, error) {
	return user.ID, nil
}

func (r *fakeUserRepo) GetUserByLogin(_ context.Context, _ string) (*model.User, error) {
	return nil, assert.AnError
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id int) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, assert.AnError
	}
	return u, nil
}

func (r *fakeUserRepo) GetLedgerForUpdate(_ context.Context, _ int) (int64, model.Stats, error) {
	return 0, model.Stats{}, assert.AnError
}

func (r *fakeUserRepo) UpdateLedger(_ context.Context, _ int, _ int64, _ model.Stats) error {
	return assert.AnError
}

type fakeLBRepo struct {
	published []model.LeaderboardEntry
	failNext  bool
}

func (r *fakeLBRepo) Publish(_ context.Context, entry model.LeaderboardEntry) error {
	if r.failNext {
		r.failNext = false
		return assert.AnError
	}
	r.published = append(r.published, entry)
	return nil
}

func (r *fakeLBRepo) Top(_ context.Context, limit int) ([]model.LeaderboardEntry, error) {
	if len(r.published) > limit {
		return r.published[:limit], nil
	}
	return r.published, nil
}

func TestSync(t *testing.T) {
	userRepo := &fakeUserRepo{users: map[int]*model.User{
		7: {ID: 7, Name: "tester", Stats: model.Stats{Opened: 3, Spent: 150, Earned: 40}},
	}}
	lbRepo := &fakeLBRepo{}
	s := NewLeaderboardService(userRepo, lbRepo)

	s.Sync(context.Background(), 7)

	require.Len(t, lbRepo.published, 1)
	entry := lbRepo.published[0]
	assert.Equal(t, 7, entry.UserID)
	assert.Equal(t, "tester", entry.Username)
	assert.Equal(t, model.Stats{Opened: 3, Spent: 150, Earned: 40}, entry.Stats)
	assert.Equal(t, AvatarURL(7), entry.Avatar)
}

func TestSync_UnknownUser(t *testing.T) {
	userRepo := &fakeUserRepo{users: map[int]*model.User{}}
	lbRepo := &fakeLBRepo{}
	s := NewLeaderboardService(userRepo, lbRepo)

	// Неизвестный пользователь не публикуется и не роняет операцию
	s.Sync(context.Background(), 99)

	assert.Empty(t, lbRepo.published)
}

func TestSync_PublishFailureSwallowed(t *testing.T) {
	userRepo := &fakeUserRepo{users: map[int]*model.User{
		1: {ID: 1, Name: "tester"},
	}}
	lbRepo := &fakeLBRepo{failNext: true}
	s := NewLeaderboardService(userRepo, lbRepo)

	s.Sync(context.Background(), 1)
	assert.Empty(t, lbRepo.published)

	// Следующая синхронизация догоняет проекцию
	s.Sync(context.Background(), 1)
	assert.Len(t, lbRepo.published, 1)
}

func TestTop_Limit(t *testing.T) {
	userRepo := &fakeUserRepo{users: map[int]*model.User{}}
	lbRepo := &fakeLBRepo{}
	for i := 0; i < 15; i++ {
		lbRepo.published = append(lbRepo.published, model.LeaderboardEntry{UserID: i})
	}
	s := NewLeaderboardService(userRepo, lbRepo)

	entries, err := s.Top(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, topLimit)
}
