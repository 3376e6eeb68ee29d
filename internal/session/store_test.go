package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/savorly/savorly-client/internal/mocks"
	"github.com/savorly/savorly-client/internal/model"
	"github.com/savorly/savorly-client/internal/testutil"
)

func makeToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func TestStore_Initialize_NoPersistedSession(t *testing.T) {
	ctx := context.Background()
	storage := &mocks.KeyValueStore{}
	storage.On("Get", mock.Anything, KeyAccessToken).Return(nil, model.ErrNotFound)

	s := NewStore(storage, testutil.MakeNoopLogger())
	s.Initialize(ctx)

	session := s.Session()
	assert.False(t, session.Authenticated)
	assert.Nil(t, session.User)
	assert.Empty(t, session.Token)
	assert.False(t, session.Loading)
}

func TestStore_Initialize_RestoresSession(t *testing.T) {
	ctx := context.Background()
	token := makeToken(t, time.Now().Add(time.Hour))
	user := model.UserProfile{ID: "u1", Name: "Ada", Email: "ada@example.com"}

	storage := &mocks.KeyValueStore{}
	storage.On("Get", mock.Anything, KeyAccessToken).Return([]byte(token), nil)
	storage.On("Get", mock.Anything, KeyUser).Return(mustJSON(t, user), nil)

	s := NewStore(storage, testutil.MakeNoopLogger())
	s.Initialize(ctx)

	session := s.Session()
	assert.True(t, session.Authenticated)
	require.NotNil(t, session.User)
	assert.Equal(t, "ada@example.com", session.User.Email)
	assert.Equal(t, token, s.Token())
}

func TestStore_Initialize_MalformedProfileClearsStorage(t *testing.T) {
	ctx := context.Background()
	storage := &mocks.KeyValueStore{}
	storage.On("Get", mock.Anything, KeyAccessToken).Return([]byte("whatever"), nil)
	storage.On("Get", mock.Anything, KeyUser).Return([]byte("{not json"), nil)
	storage.On("Delete", mock.Anything, KeyAccessToken).Return(nil)
	storage.On("Delete", mock.Anything, KeyUser).Return(nil)

	s := NewStore(storage, testutil.MakeNoopLogger())
	s.Initialize(ctx)

	assert.False(t, s.Authenticated())
	storage.AssertCalled(t, "Delete", mock.Anything, KeyAccessToken)
	storage.AssertCalled(t, "Delete", mock.Anything, KeyUser)
}

func TestStore_Initialize_MalformedTokenClearsStorage(t *testing.T) {
	ctx := context.Background()
	user := model.UserProfile{ID: "u1", Email: "a@b.c"}

	storage := &mocks.KeyValueStore{}
	storage.On("Get", mock.Anything, KeyAccessToken).Return([]byte("not-a-jwt"), nil)
	storage.On("Get", mock.Anything, KeyUser).Return(mustJSON(t, user), nil)
	storage.On("Delete", mock.Anything, mock.Anything).Return(nil)

	s := NewStore(storage, testutil.MakeNoopLogger())
	s.Initialize(ctx)

	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Token())
}

func TestStore_Initialize_ExpiredTokenFallsBackToAnonymous(t *testing.T) {
	ctx := context.Background()
	token := makeToken(t, time.Now().Add(-time.Hour))
	user := model.UserProfile{ID: "u1", Email: "a@b.c"}

	storage := &mocks.KeyValueStore{}
	storage.On("Get", mock.Anything, KeyAccessToken).Return([]byte(token), nil)
	storage.On("Get", mock.Anything, KeyUser).Return(mustJSON(t, user), nil)
	storage.On("Delete", mock.Anything, mock.Anything).Return(nil)

	s := NewStore(storage, testutil.MakeNoopLogger())
	s.Initialize(ctx)

	assert.False(t, s.Authenticated())
}

func TestStore_Initialize_StorageErrorIsNotFatal(t *testing.T) {
	ctx := context.Background()
	storage := &mocks.KeyValueStore{}
	storage.On("Get", mock.Anything, KeyAccessToken).Return(nil, assert.AnError)

	s := NewStore(storage, testutil.MakeNoopLogger())
	s.Initialize(ctx)

	assert.False(t, s.Authenticated())
	assert.False(t, s.Session().Loading)
}

func TestStore_LoginThenLogout_RestoresAnonymousState(t *testing.T) {
	ctx := context.Background()
	storage := &mocks.KeyValueStore{}
	storage.On("Get", mock.Anything, KeyAccessToken).Return(nil, model.ErrNotFound)
	storage.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	storage.On("Delete", mock.Anything, mock.Anything).Return(nil)

	s := NewStore(storage, testutil.MakeNoopLogger())
	s.Initialize(ctx)
	anonymous := s.Session()

	s.Login(ctx, model.UserProfile{ID: "u1", Email: "a@b.c"}, "token-123")
	require.True(t, s.Authenticated())
	require.Equal(t, "token-123", s.Token())

	s.Logout(ctx)

	assert.Equal(t, anonymous, s.Session())
	storage.AssertCalled(t, "Delete", mock.Anything, KeyAccessToken)
	storage.AssertCalled(t, "Delete", mock.Anything, KeyUser)
}

func TestStore_Login_PersistsBothKeys(t *testing.T) {
	ctx := context.Background()
	user := model.UserProfile{ID: "u1", Email: "a@b.c"}

	storage := &mocks.KeyValueStore{}
	storage.On("Set", mock.Anything, KeyAccessToken, []byte("tok")).Return(nil)
	storage.On("Set", mock.Anything, KeyUser, mustJSON(t, user)).Return(nil)

	s := NewStore(storage, testutil.MakeNoopLogger())
	s.Login(ctx, user, "tok")

	storage.AssertExpectations(t)
}

func TestStore_Logout_SucceedsWhenStorageEmpty(t *testing.T) {
	ctx := context.Background()
	storage := &mocks.KeyValueStore{}
	storage.On("Delete", mock.Anything, mock.Anything).Return(nil)

	s := NewStore(storage, testutil.MakeNoopLogger())
	s.Logout(ctx)

	assert.False(t, s.Authenticated())
}

func TestStore_HandleUnauthorized_MatchesLogout(t *testing.T) {
	ctx := context.Background()
	storage := &mocks.KeyValueStore{}
	storage.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	storage.On("Delete", mock.Anything, mock.Anything).Return(nil)

	s := NewStore(storage, testutil.MakeNoopLogger())
	s.Login(ctx, model.UserProfile{ID: "u1"}, "tok")

	s.HandleUnauthorized()

	assert.Equal(t, model.Anonymous(), s.Session())
}

func TestStore_SetProfile_ReplacesWholeRecord(t *testing.T) {
	ctx := context.Background()
	storage := &mocks.KeyValueStore{}
	storage.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	s := NewStore(storage, testutil.MakeNoopLogger())
	s.Login(ctx, model.UserProfile{ID: "u1", Name: "Old", DietaryPreferences: []string{"vegan"}}, "tok")

	s.SetProfile(ctx, model.UserProfile{ID: "u1", Name: "New"})

	session := s.Session()
	require.NotNil(t, session.User)
	assert.Equal(t, "New", session.User.Name)
	assert.Empty(t, session.User.DietaryPreferences)
}

func TestStore_SetProfile_NoopWhenAnonymous(t *testing.T) {
	ctx := context.Background()
	storage := &mocks.KeyValueStore{}

	s := NewStore(storage, testutil.MakeNoopLogger())
	s.SetProfile(ctx, model.UserProfile{ID: "u1"})

	assert.Nil(t, s.Session().User)
	storage.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestStore_SessionInvariant(t *testing.T) {
	ctx := context.Background()
	storage := &mocks.KeyValueStore{}
	storage.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	storage.On("Delete", mock.Anything, mock.Anything).Return(nil)

	s := NewStore(storage, testutil.MakeNoopLogger())

	check := func() {
		session := s.Session()
		assert.Equal(t, session.Authenticated, session.User != nil && session.Token != "")
	}

	check()
	s.Login(ctx, model.UserProfile{ID: "u1"}, "tok")
	check()
	s.Logout(ctx)
	check()
}
