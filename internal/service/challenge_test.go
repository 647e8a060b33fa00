package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sentra-app/auth-server/internal/logger"
	"github.com/sentra-app/auth-server/internal/mocks"
	"github.com/sentra-app/auth-server/internal/model"
	"github.com/sentra-app/auth-server/internal/security"
)

func newTestChallenge(store model.ChallengeStore) (*Challenge, *security.Hasher) {
	hasher := security.NewHasher(bcrypt.MinCost, "test-secret")
	return NewChallenge(store, hasher, 10*time.Minute, logger.New(0)), hasher
}

func TestChallenge_Issue_StoresDigestOnly(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ChallengeStore{}
	svc, hasher := newTestChallenge(store)

	var stored model.Challenge
	store.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(model.Challenge)
	}).Return(nil)

	code, err := svc.Issue(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, code, 6)
	for _, r := range code {
		assert.GreaterOrEqual(t, r, '0')
		assert.LessOrEqual(t, r, '9')
	}

	assert.Equal(t, "a@x.com", stored.Email)
	assert.False(t, stored.Used)
	assert.NotContains(t, stored.CodeHash, code)
	assert.Equal(t, hasher.HashOTP("a@x.com", code), stored.CodeHash)
}

func TestChallenge_Verify_Success(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ChallengeStore{}
	svc, hasher := newTestChallenge(store)

	challenge := model.Challenge{
		ID:        newUUID(t),
		Email:     "a@x.com",
		CodeHash:  hasher.HashOTP("a@x.com", "123456"),
		CreatedAt: time.Now(),
	}
	store.On("GetLatestUnused", mock.Anything, "a@x.com").Return(challenge, nil)
	store.On("Consume", mock.Anything, challenge.ID).Return(true, nil)

	ok, err := svc.Verify(ctx, "a@x.com", "123456")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestChallenge_Verify_NoChallenge(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ChallengeStore{}
	svc, _ := newTestChallenge(store)

	store.On("GetLatestUnused", mock.Anything, "a@x.com").Return(model.Challenge{}, model.ErrNotFound)

	ok, err := svc.Verify(ctx, "a@x.com", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChallenge_Verify_Expired(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ChallengeStore{}
	svc, hasher := newTestChallenge(store)

	challenge := model.Challenge{
		ID:        newUUID(t),
		Email:     "a@x.com",
		CodeHash:  hasher.HashOTP("a@x.com", "123456"),
		CreatedAt: time.Now().Add(-time.Hour),
	}
	store.On("GetLatestUnused", mock.Anything, "a@x.com").Return(challenge, nil)

	ok, err := svc.Verify(ctx, "a@x.com", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
	store.AssertNotCalled(t, "Consume", mock.Anything, mock.Anything)
}

func TestChallenge_Verify_WrongCode(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ChallengeStore{}
	svc, hasher := newTestChallenge(store)

	challenge := model.Challenge{
		ID:        newUUID(t),
		Email:     "a@x.com",
		CodeHash:  hasher.HashOTP("a@x.com", "123456"),
		CreatedAt: time.Now(),
	}
	store.On("GetLatestUnused", mock.Anything, "a@x.com").Return(challenge, nil)

	ok, err := svc.Verify(ctx, "a@x.com", "654321")
	require.NoError(t, err)
	assert.False(t, ok)
	store.AssertNotCalled(t, "Consume", mock.Anything, mock.Anything)
}

func TestChallenge_Verify_OlderCodeNeverEligible(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ChallengeStore{}
	svc, hasher := newTestChallenge(store)

	// Only the newest unused challenge is ever fetched, so a previously
	// issued code fails even though it was itself never used.
	newest := model.Challenge{
		ID:        newUUID(t),
		Email:     "a@x.com",
		CodeHash:  hasher.HashOTP("a@x.com", "222222"),
		CreatedAt: time.Now(),
	}
	store.On("GetLatestUnused", mock.Anything, "a@x.com").Return(newest, nil)

	ok, err := svc.Verify(ctx, "a@x.com", "111111")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChallenge_Verify_ConsumedByConcurrentAttempt(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ChallengeStore{}
	svc, hasher := newTestChallenge(store)

	challenge := model.Challenge{
		ID:        newUUID(t),
		Email:     "a@x.com",
		CodeHash:  hasher.HashOTP("a@x.com", "123456"),
		CreatedAt: time.Now(),
	}
	store.On("GetLatestUnused", mock.Anything, "a@x.com").Return(challenge, nil)
	store.On("Consume", mock.Anything, challenge.ID).Return(false, nil)

	ok, err := svc.Verify(ctx, "a@x.com", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGenerateCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 32; i++ {
		code, err := generateCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		seen[code] = true
	}
	// With a million possible codes, 32 draws colliding into one value
	// would mean a broken generator.
	assert.Greater(t, len(seen), 1)
}
