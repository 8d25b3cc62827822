package service

import (
	"github.com/google/uuid"
)

// StudentIdentity carries both primary keys that may reference the same
// student. The Quran/Academic subsystems key sessions, subscriptions and
// reports by user id; the course subsystem keys enrollments by student
// profile id. Never pass a bare UUID across a subsystem boundary — pass the
// identity (or a typed key set) so the callee picks the right key.
type StudentIdentity struct {
	StudentProfileID uuid.UUID
	UserID           *uuid.UUID
}

// SessionKey is the key for user-id-keyed subsystems (Quran/Academic). When
// the profile was never linked to a login account the profile id is used
// instead; legacy data was written that way and still has to be reachable.
func (s StudentIdentity) SessionKey() uuid.UUID {
	if s.UserID != nil && *s.UserID != uuid.Nil {
		return *s.UserID
	}
	return s.StudentProfileID
}

// ProfileKey is the key for profile-keyed subsystems (course enrollments).
func (s StudentIdentity) ProfileKey() uuid.UUID {
	return s.StudentProfileID
}

// Child is a resolved linked student with display metadata.
type Child struct {
	Identity         StudentIdentity
	DisplayName      string
	AvatarURL        *string
	GradeLevel       *string
	RelationshipType string
}

// UserKeys / ProfileKeys are distinct types on purpose: an adapter that wants
// profile keys cannot be handed session keys without a compile error.
type (
	UserKeys    []uuid.UUID
	ProfileKeys []uuid.UUID
)

// KeySet is the batched identity input for the unified fetching layer. One
// key set covers all of a parent's children so that each adapter is invoked
// exactly once per request.
type KeySet struct {
	User    UserKeys
	Profile ProfileKeys
}

func (k KeySet) Empty() bool { return len(k.User) == 0 && len(k.Profile) == 0 }

// BuildKeySet flattens children into the two key lists.
func BuildKeySet(children []Child) KeySet {
	ks := KeySet{
		User:    make(UserKeys, 0, len(children)),
		Profile: make(ProfileKeys, 0, len(children)),
	}
	for _, ch := range children {
		ks.User = append(ks.User, ch.Identity.SessionKey())
		ks.Profile = append(ks.Profile, ch.Identity.ProfileKey())
	}
	return ks
}

// ChildIndex maps both key spaces back to the owning child so merged session
// events can be re-attributed for display.
type ChildIndex struct {
	bySessionKey map[uuid.UUID]*Child
	byProfileKey map[uuid.UUID]*Child
}

func IndexChildren(children []Child) ChildIndex {
	idx := ChildIndex{
		bySessionKey: make(map[uuid.UUID]*Child, len(children)),
		byProfileKey: make(map[uuid.UUID]*Child, len(children)),
	}
	for i := range children {
		ch := &children[i]
		idx.bySessionKey[ch.Identity.SessionKey()] = ch
		idx.byProfileKey[ch.Identity.ProfileKey()] = ch
	}
	return idx
}

func (idx ChildIndex) BySessionKey(key uuid.UUID) *Child { return idx.bySessionKey[key] }
func (idx ChildIndex) ByProfileKey(key uuid.UUID) *Child { return idx.byProfileKey[key] }

// ByAnyKey resolves an event's student key regardless of which key space the
// producing subsystem used.
func (idx ChildIndex) ByAnyKey(key uuid.UUID) *Child {
	if ch := idx.bySessionKey[key]; ch != nil {
		return ch
	}
	return idx.byProfileKey[key]
}
