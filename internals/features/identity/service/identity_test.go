package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionKeyPrefersUserID(t *testing.T) {
	userID := uuid.New()
	profileID := uuid.New()
	id := StudentIdentity{StudentProfileID: profileID, UserID: &userID}
	assert.Equal(t, userID, id.SessionKey())
	assert.Equal(t, profileID, id.ProfileKey())
}

func TestSessionKeyFallsBackToProfile(t *testing.T) {
	profileID := uuid.New()

	noUser := StudentIdentity{StudentProfileID: profileID}
	assert.Equal(t, profileID, noUser.SessionKey())

	nilUser := StudentIdentity{StudentProfileID: profileID, UserID: &uuid.Nil}
	assert.Equal(t, profileID, nilUser.SessionKey())
}

func TestBuildKeySet(t *testing.T) {
	userID := uuid.New()
	withAccount := Child{Identity: StudentIdentity{StudentProfileID: uuid.New(), UserID: &userID}}
	withoutAccount := Child{Identity: StudentIdentity{StudentProfileID: uuid.New()}}

	ks := BuildKeySet([]Child{withAccount, withoutAccount})
	require.Len(t, ks.User, 2)
	require.Len(t, ks.Profile, 2)
	assert.Equal(t, userID, ks.User[0])
	assert.Equal(t, withoutAccount.Identity.StudentProfileID, ks.User[1])
	assert.False(t, ks.Empty())

	assert.True(t, KeySet{}.Empty())
}

func TestChildIndexByAnyKey(t *testing.T) {
	userID := uuid.New()
	children := []Child{
		{Identity: StudentIdentity{StudentProfileID: uuid.New(), UserID: &userID}, DisplayName: "Aisyah"},
		{Identity: StudentIdentity{StudentProfileID: uuid.New()}, DisplayName: "Bilal"},
	}
	idx := IndexChildren(children)

	// User-keyed subsystems resolve by session key.
	require.NotNil(t, idx.ByAnyKey(userID))
	assert.Equal(t, "Aisyah", idx.ByAnyKey(userID).DisplayName)

	// Profile-keyed subsystems resolve by profile id.
	require.NotNil(t, idx.ByAnyKey(children[0].Identity.StudentProfileID))
	require.NotNil(t, idx.ByAnyKey(children[1].Identity.StudentProfileID))
	assert.Equal(t, "Bilal", idx.ByAnyKey(children[1].Identity.StudentProfileID).DisplayName)

	assert.Nil(t, idx.ByAnyKey(uuid.New()))
}
