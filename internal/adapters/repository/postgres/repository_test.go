package postgres

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/polling-app/internal/core/domain"
	"github.com/vncsmyrnk/polling-app/internal/core/ports"
)

func TestMigrationsAreIdempotent(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, db))
	require.NoError(t, ApplyMigration(ctx, db, "create_votes"))
	assert.Error(t, ApplyMigration(ctx, db, "does_not_exist"))
}

func TestPollRepository_SaveAndGet(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := NewPollRepository(db)

	poll := testPoll(createUser(t, db), "Favorite color?", time.Now().UTC(), "Red", "Green", "Blue")
	require.NoError(t, repo.Save(ctx, poll))

	got, err := repo.GetByID(ctx, poll.ID)
	require.NoError(t, err)
	assert.Equal(t, poll.Title, got.Title)
	require.Len(t, got.Options, 3)
	for i, want := range []string{"Red", "Green", "Blue"} {
		assert.Equal(t, want, got.Options[i].Text)
		assert.Equal(t, i, got.Options[i].Position)
	}

	opts, err := repo.ListOptions(ctx, poll.ID)
	require.NoError(t, err)
	assert.Len(t, opts, 3)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrPollNotFound)

	assert.NoError(t, repo.Ping(ctx))
}

func TestPollRepository_SaveIsAtomic(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := NewPollRepository(db)

	poll := testPoll(createUser(t, db), "Broken", time.Now().UTC(), "A", "B")
	poll.Options[1].ID = poll.Options[0].ID

	require.Error(t, repo.Save(ctx, poll))

	_, err := repo.GetByID(ctx, poll.ID)
	assert.ErrorIs(t, err, domain.ErrPollNotFound)
}

func TestPollRepository_List(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := NewPollRepository(db)

	owner := createUser(t, db)
	tag := uuid.NewString()[:8]
	base := time.Now().UTC().Add(24 * time.Hour)
	for i, prefix := range []string{"Alpha", "Beta", "Gamma"} {
		for j := 1; j <= 5; j++ {
			title := fmt.Sprintf("%s %s %d", tag, prefix, j)
			p := testPoll(owner, title, base.Add(time.Duration(i*5+j)*time.Minute), "A", "B")
			require.NoError(t, repo.Save(ctx, p))
		}
	}
	closed := testPoll(owner, tag+" Gamma closed", base.Add(time.Hour), "A", "B")
	closed.IsActive = false
	require.NoError(t, repo.Save(ctx, closed))

	page1, err := repo.List(ctx, ports.PollFilter{ActiveOnly: true, Query: tag, Limit: 10})
	require.NoError(t, err)
	require.Len(t, page1, 10)
	assert.Equal(t, tag+" Gamma 5", page1[0].Title)
	assert.Len(t, page1[0].Options, 2)

	page2, err := repo.List(ctx, ports.PollFilter{ActiveOnly: true, Query: tag, Limit: 10, Offset: 10})
	require.NoError(t, err)
	require.Len(t, page2, 5)
	assert.Equal(t, tag+" Alpha 5", page2[0].Title)

	search, err := repo.List(ctx, ports.PollFilter{ActiveOnly: true, Query: tag + " beta"})
	require.NoError(t, err)
	assert.Len(t, search, 5)

	mine, err := repo.List(ctx, ports.PollFilter{CreatedBy: owner})
	require.NoError(t, err)
	assert.Len(t, mine, 16)

	// Search text is matched literally, wildcards included.
	require.NoError(t, repo.Save(ctx, testPoll(owner, tag+" 50% off", base, "A", "B")))
	literal, err := repo.List(ctx, ports.PollFilter{ActiveOnly: true, Query: tag + " 50%"})
	require.NoError(t, err)
	require.Len(t, literal, 1)
	assert.Equal(t, tag+" 50% off", literal[0].Title)

	for _, q := range []string{tag + "%", tag + " _", tag + `\`} {
		none, err := repo.List(ctx, ports.PollFilter{ActiveOnly: true, Query: q})
		require.NoError(t, err)
		assert.Empty(t, none, q)
	}
}

func TestVoteRepository_UpsertAndCounts(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	polls := NewPollRepository(db)
	votes := NewVoteRepository(db)

	poll := testPoll(createUser(t, db), "Colors", time.Now().UTC(), "Red", "Green", "Blue")
	require.NoError(t, polls.Save(ctx, poll))
	alice, bob := createUser(t, db), createUser(t, db)

	cast := func(user uuid.UUID, opt int) (*domain.Vote, bool) {
		now := time.Now().UTC()
		vote := &domain.Vote{ID: uuid.New(), PollID: poll.ID, OptionID: poll.Options[opt].ID, UserID: user, CreatedAt: now, UpdatedAt: now}
		created, err := votes.Upsert(ctx, vote)
		require.NoError(t, err)
		return vote, created
	}

	first, created := cast(alice, 0)
	assert.True(t, created)
	changed, created := cast(alice, 1)
	assert.False(t, created)
	assert.Equal(t, first.ID, changed.ID)
	_, created = cast(bob, 1)
	assert.True(t, created)

	got, err := votes.GetByVoter(ctx, poll.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, poll.Options[1].ID, got.OptionID)

	_, err = votes.GetByVoter(ctx, poll.ID, uuid.New())
	assert.ErrorIs(t, err, domain.ErrVoteNotFound)

	total, err := votes.CountByPoll(ctx, poll.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	green, err := votes.CountByOption(ctx, poll.Options[1].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), green)

	grouped, err := votes.CountByPollGrouped(ctx, poll.ID)
	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]int64{poll.Options[1].ID: 2}, grouped)
}

func TestVoteRepository_ConcurrentUpsertKeepsOneVote(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	polls := NewPollRepository(db)
	votes := NewVoteRepository(db)

	poll := testPoll(createUser(t, db), "Race", time.Now().UTC(), "A", "B", "C")
	require.NoError(t, polls.Save(ctx, poll))
	voter := createUser(t, db)

	const n = 20
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		inserts int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			now := time.Now().UTC()
			created, err := votes.Upsert(ctx, &domain.Vote{
				ID:        uuid.New(),
				PollID:    poll.ID,
				OptionID:  poll.Options[i%3].ID,
				UserID:    voter,
				CreatedAt: now,
				UpdatedAt: now,
			})
			assert.NoError(t, err)
			if created {
				mu.Lock()
				inserts++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, inserts)
	total, err := votes.CountByPoll(ctx, poll.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestUserAndAuthRepositories(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	users := NewUserRepository(db)
	tokens := NewAuthRepository(db)

	email := fmt.Sprintf("ada-%s@example.com", uuid.NewString())
	user := &domain.User{Email: email, Name: "Ada", PasswordHash: "hash"}
	require.NoError(t, users.Create(ctx, user))

	err := users.Create(ctx, &domain.User{Email: email})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	got, err := users.GetByEmail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = users.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	hash := uuid.NewString()
	rt := &domain.RefreshToken{UserID: user.ID, TokenHash: hash, ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, tokens.StoreRefreshToken(ctx, rt))

	require.NoError(t, tokens.RevokeRefreshToken(ctx, rt.ID))
	stored, err := tokens.GetRefreshTokenByHash(ctx, hash)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Revoked)

	missing, err := tokens.GetRefreshTokenByHash(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
