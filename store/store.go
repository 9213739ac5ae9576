package store

import (
	"encoding/json"
	"log"
	"sort"

	"civiclens/db"
	"civiclens/models"
)

// Storage keys for the three logical tables. The version suffix lets a schema
// change orphan old data instead of migrating it.
const (
	usersKey   = "civic_lens_users_db_v2"
	reportsKey = "civic_lens_reports_db_v2"
	sessionKey = "civic_lens_session_v2"
)

// Store owns the user table, the report list and the session record on top of
// a KV adapter. All mutations are whole-table read-modify-write with no
// locking, so two interleaved write sequences are last-writer-wins; that
// matches the single-writer local store this replaces.
type Store struct {
	kv db.KV
}

func New(kv db.KV) *Store {
	return &Store{kv: kv}
}

// LoadUsers returns the user table keyed by emailOrPhone. A missing or
// corrupt table is treated as empty; seed users absent from the table are
// merged in and the merged table is persisted back.
func (s *Store) LoadUsers() map[string]models.UserProfile {
	users := make(map[string]models.UserProfile)
	if raw, ok := s.kv.Get(usersKey); ok {
		if err := json.Unmarshal([]byte(raw), &users); err != nil {
			log.Printf("store: corrupt user table, starting empty: %v", err)
			users = make(map[string]models.UserProfile)
		}
	}

	changed := false
	for _, seed := range seedUsers {
		if _, exists := users[seed.EmailOrPhone]; !exists {
			users[seed.EmailOrPhone] = seed
			changed = true
		}
	}
	if changed {
		if err := s.SaveUsers(users); err != nil {
			log.Printf("store: failed to persist seed users: %v", err)
		}
	}

	return users
}

// SaveUsers replaces the whole user table.
func (s *Store) SaveUsers(users map[string]models.UserProfile) error {
	data, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return s.kv.Set(usersKey, string(data))
}

// AllUsers returns every user sorted by points descending, which is the
// leaderboard order.
func (s *Store) AllUsers() []models.UserProfile {
	users := s.LoadUsers()
	all := make([]models.UserProfile, 0, len(users))
	for _, u := range users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Stats.Points > all[j].Stats.Points
	})
	return all
}

// LoadReports returns the report list, most recent first. Missing or corrupt
// data yields an empty list.
func (s *Store) LoadReports() []models.ReportSubmission {
	raw, ok := s.kv.Get(reportsKey)
	if !ok {
		return []models.ReportSubmission{}
	}
	var reports []models.ReportSubmission
	if err := json.Unmarshal([]byte(raw), &reports); err != nil {
		log.Printf("store: corrupt report table, starting empty: %v", err)
		return []models.ReportSubmission{}
	}
	return reports
}

// SaveReports replaces the whole report list.
func (s *Store) SaveReports(reports []models.ReportSubmission) error {
	data, err := json.Marshal(reports)
	if err != nil {
		return err
	}
	return s.kv.Set(reportsKey, string(data))
}

// Session returns the currently authenticated user, if any.
func (s *Store) Session() (models.UserProfile, bool) {
	raw, ok := s.kv.Get(sessionKey)
	if !ok {
		return models.UserProfile{}, false
	}
	var user models.UserProfile
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Printf("store: corrupt session record, dropping it: %v", err)
		return models.UserProfile{}, false
	}
	return user, true
}

// SaveSession mirrors the given user as the live session.
func (s *Store) SaveSession(user models.UserProfile) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.kv.Set(sessionKey, string(data))
}

// ClearSession removes the session record, leaving the user table alone.
func (s *Store) ClearSession() error {
	return s.kv.Remove(sessionKey)
}
