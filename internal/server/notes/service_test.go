package notes

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/server/users"
)

func newTestService(t *testing.T) (*Service, *users.MemoryRepository) {
	t.Helper()
	usersRepo := users.NewMemoryRepository()
	return NewService(NewMemoryRepository(), usersRepo), usersRepo
}

func addUser(t *testing.T, repo *users.MemoryRepository, username string) string {
	t.Helper()
	u, err := repo.Create(context.Background(), &users.User{Username: username, PasswordHash: "x"})
	require.NoError(t, err)
	return u.ID
}

func TestCreateAndGet(t *testing.T) {
	t.Parallel()

	svc, usersRepo := newTestService(t)
	ctx := context.Background()
	alice := addUser(t, usersRepo, "alice1")

	note, err := svc.Create(ctx, alice, "T", "B")
	require.NoError(t, err)
	assert.NotEmpty(t, note.ID)
	assert.Equal(t, alice, note.OwnerID)
	assert.Empty(t, note.SharedWith)

	got, err := svc.Get(ctx, alice, note.ID)
	require.NoError(t, err)
	assert.Equal(t, note.ID, got.ID)
	assert.Equal(t, "T", got.Title)
}

func TestGet_OtherUsersNoteLooksMissing(t *testing.T) {
	t.Parallel()

	svc, usersRepo := newTestService(t)
	ctx := context.Background()
	alice := addUser(t, usersRepo, "alice1")
	bob := addUser(t, usersRepo, "bob1234")

	note, err := svc.Create(ctx, alice, "T", "B")
	require.NoError(t, err)

	_, missing := svc.Get(ctx, bob, note.ID)
	_, nonexistent := svc.Get(ctx, bob, "no-such-id")

	assert.ErrorIs(t, missing, common.ErrorNotFound)
	assert.Equal(t, nonexistent, missing, "foreign and missing notes must be indistinguishable")
}

func TestList_OwnerScoped(t *testing.T) {
	t.Parallel()

	svc, usersRepo := newTestService(t)
	ctx := context.Background()
	alice := addUser(t, usersRepo, "alice1")
	bob := addUser(t, usersRepo, "bob1234")

	first, err := svc.Create(ctx, alice, "first", "B")
	require.NoError(t, err)
	second, err := svc.Create(ctx, alice, "second", "B")
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob, "bobs", "B")
	require.NoError(t, err)

	got, err := svc.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID, "oldest first")
	assert.Equal(t, second.ID, got[1].ID)
}

func TestUpdate_NilFieldKeepsStoredValue(t *testing.T) {
	t.Parallel()

	svc, usersRepo := newTestService(t)
	ctx := context.Background()
	alice := addUser(t, usersRepo, "alice1")

	note, err := svc.Create(ctx, alice, "T", "B")
	require.NoError(t, err)

	newTitle := "T2"
	updated, err := svc.Update(ctx, alice, note.ID, &newTitle, nil)
	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, "B", updated.Body, "omitted field keeps its value")

	newBody := "B2"
	updated, err = svc.Update(ctx, alice, note.ID, nil, &newBody)
	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, "B2", updated.Body)
}

func TestUpdateAndDelete_OwnerScoped(t *testing.T) {
	t.Parallel()

	svc, usersRepo := newTestService(t)
	ctx := context.Background()
	alice := addUser(t, usersRepo, "alice1")
	bob := addUser(t, usersRepo, "bob1234")

	note, err := svc.Create(ctx, alice, "T", "B")
	require.NoError(t, err)

	title := "hijack"
	_, err = svc.Update(ctx, bob, note.ID, &title, nil)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, bob, note.ID), common.ErrorNotFound)

	require.NoError(t, svc.Delete(ctx, alice, note.ID))
	_, err = svc.Get(ctx, alice, note.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestShare_FullFlow(t *testing.T) {
	t.Parallel()

	svc, usersRepo := newTestService(t)
	ctx := context.Background()
	alice := addUser(t, usersRepo, "alice1")
	bob := addUser(t, usersRepo, "bob1234")

	note, err := svc.Create(ctx, alice, "T", "B")
	require.NoError(t, err)

	require.NoError(t, svc.Share(ctx, alice, note.ID, "bob1234"))

	got, err := svc.Get(ctx, alice, note.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{bob}, got.SharedWith)

	// second share of the same target is an explicit error, size stays 1
	err = svc.Share(ctx, alice, note.ID, "bob1234")
	assert.ErrorIs(t, err, common.ErrorAlreadyShared)

	got, err = svc.Get(ctx, alice, note.ID)
	require.NoError(t, err)
	assert.Len(t, got.SharedWith, 1)
}

func TestShare_ErrorCases(t *testing.T) {
	t.Parallel()

	svc, usersRepo := newTestService(t)
	ctx := context.Background()
	alice := addUser(t, usersRepo, "alice1")
	bob := addUser(t, usersRepo, "bob1234")

	note, err := svc.Create(ctx, alice, "T", "B")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Share(ctx, alice, "no-such-id", "bob1234"), common.ErrorNotFound)
	assert.ErrorIs(t, svc.Share(ctx, bob, note.ID, "bob1234"), common.ErrorPermissionDenied)
	assert.ErrorIs(t, svc.Share(ctx, alice, note.ID, "ghost9"), common.ErrorUserNotFound)
}

func TestShare_ConcurrentSameTarget_SingleSuccess(t *testing.T) {
	t.Parallel()

	svc, usersRepo := newTestService(t)
	ctx := context.Background()
	alice := addUser(t, usersRepo, "alice1")
	addUser(t, usersRepo, "bob1234")

	note, err := svc.Create(ctx, alice, "T", "B")
	require.NoError(t, err)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = svc.Share(ctx, alice, note.ID, "bob1234")
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, common.ErrorAlreadyShared)
		}
	}
	assert.Equal(t, 1, successes)

	got, err := svc.Get(ctx, alice, note.ID)
	require.NoError(t, err)
	assert.Len(t, got.SharedWith, 1)
}

// Sharing records the viewer but grants no read access: the target still
// cannot get or list the note. Intentional asymmetry, kept as documented.
func TestSharedNoteInvisibleToTarget(t *testing.T) {
	t.Parallel()

	svc, usersRepo := newTestService(t)
	ctx := context.Background()
	alice := addUser(t, usersRepo, "alice1")
	bob := addUser(t, usersRepo, "bob1234")

	note, err := svc.Create(ctx, alice, "T", "B")
	require.NoError(t, err)
	require.NoError(t, svc.Share(ctx, alice, note.ID, "bob1234"))

	_, err = svc.Get(ctx, bob, note.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	got, err := svc.List(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, got)
}
