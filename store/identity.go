package store

import (
	"errors"

	"civiclens/models"
)

// ErrDuplicateUser is returned by Register when the key is already taken.
var ErrDuplicateUser = errors.New("user already exists")

// Login looks up a user by emailOrPhone. The supplied key is trusted as-is;
// the password field on the profile is stored but never checked.
func (s *Store) Login(key string) (models.UserProfile, bool) {
	users := s.LoadUsers()
	user, ok := users[key]
	return user, ok
}

// Register inserts a new user. The check runs against the freshly loaded
// table, not a cached copy, and the existing record is left untouched on a
// duplicate key.
func (s *Store) Register(user models.UserProfile) (models.UserProfile, error) {
	users := s.LoadUsers()
	if _, exists := users[user.EmailOrPhone]; exists {
		return models.UserProfile{}, ErrDuplicateUser
	}
	users[user.EmailOrPhone] = user
	if err := s.SaveUsers(users); err != nil {
		return models.UserProfile{}, err
	}
	return user, nil
}

// UpdateProfile replaces the stored record for the profile's key. When the
// active session holds the same key, the session mirror is refreshed so
// subsequent reads see the update immediately.
func (s *Store) UpdateProfile(user models.UserProfile) error {
	users := s.LoadUsers()
	users[user.EmailOrPhone] = user
	if err := s.SaveUsers(users); err != nil {
		return err
	}

	if session, ok := s.Session(); ok && session.EmailOrPhone == user.EmailOrPhone {
		return s.SaveSession(user)
	}
	return nil
}

// Logout clears the session record only.
func (s *Store) Logout() error {
	return s.ClearSession()
}
