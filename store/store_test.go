package store

import (
	"testing"

	"civiclens/db"
	"civiclens/models"
)

func newTestStore() (*Store, *db.Memory) {
	kv := db.NewMemory()
	return New(kv), kv
}

func TestSeedUsersOnFirstLoad(t *testing.T) {
	st, _ := newTestStore()

	users := st.LoadUsers()
	if len(users) != 5 {
		t.Errorf("Expected 5 seed users on first load, got %d", len(users))
	}

	arjun, ok := users["9999999991"]
	if !ok {
		t.Fatalf("Expected seed user 9999999991 to be present")
	}
	if arjun.Name != "Arjun Reddy" || arjun.Stats.Points != 2450 {
		t.Errorf("Seed user has wrong data: %+v", arjun)
	}

	// A second load must not duplicate or alter the seeds
	users = st.LoadUsers()
	if len(users) != 5 {
		t.Errorf("Expected 5 users after second load, got %d", len(users))
	}
	if users["9999999991"].Stats.Points != 2450 {
		t.Errorf("Second load altered seed user points: %d", users["9999999991"].Stats.Points)
	}
}

func TestSeedMergeDoesNotOverwriteRealUser(t *testing.T) {
	st, _ := newTestStore()

	real := models.UserProfile{
		ID:           "u1",
		Name:         "Real Person",
		EmailOrPhone: "9999999991", // same key as a seed user
		Stats:        models.UserStats{Rank: RankNewCitizen, CurrentStreak: 1},
	}
	if err := st.SaveUsers(map[string]models.UserProfile{real.EmailOrPhone: real}); err != nil {
		t.Fatalf("SaveUsers failed: %v", err)
	}

	users := st.LoadUsers()
	if len(users) != 5 {
		t.Errorf("Expected 4 seeds merged around the real user, got %d users", len(users))
	}
	if users["9999999991"].Name != "Real Person" {
		t.Errorf("Seed merge overwrote a real user: %+v", users["9999999991"])
	}
}

func TestLoadUsersCorruptData(t *testing.T) {
	st, kv := newTestStore()

	kv.Set("civic_lens_users_db_v2", "{definitely not json")

	users := st.LoadUsers()
	if len(users) != 5 {
		t.Errorf("Expected exactly the 5 seed users after corrupt load, got %d", len(users))
	}
	for _, seed := range seedUsers {
		if _, ok := users[seed.EmailOrPhone]; !ok {
			t.Errorf("Seed user %s missing after corrupt load", seed.EmailOrPhone)
		}
	}
}

func TestLoadReportsCorruptData(t *testing.T) {
	st, kv := newTestStore()

	kv.Set("civic_lens_reports_db_v2", "[{broken")

	reports := st.LoadReports()
	if len(reports) != 0 {
		t.Errorf("Expected empty report list after corrupt load, got %d", len(reports))
	}
}

func TestLoadReportsAbsent(t *testing.T) {
	st, _ := newTestStore()

	reports := st.LoadReports()
	if reports == nil || len(reports) != 0 {
		t.Errorf("Expected empty non-nil report list, got %v", reports)
	}
}

func TestSessionLifecycle(t *testing.T) {
	st, _ := newTestStore()

	if _, ok := st.Session(); ok {
		t.Errorf("Expected no session initially")
	}

	user := models.UserProfile{ID: "u1", Name: "Test", EmailOrPhone: "8888888888"}
	if err := st.SaveSession(user); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	got, ok := st.Session()
	if !ok {
		t.Fatalf("Expected a session after SaveSession")
	}
	if got.EmailOrPhone != "8888888888" || got.Name != "Test" {
		t.Errorf("Session returned wrong user: %+v", got)
	}

	if err := st.ClearSession(); err != nil {
		t.Fatalf("ClearSession failed: %v", err)
	}
	if _, ok := st.Session(); ok {
		t.Errorf("Expected no session after ClearSession")
	}
}

func TestCorruptSessionAbsorbed(t *testing.T) {
	st, kv := newTestStore()

	kv.Set("civic_lens_session_v2", "not json at all")

	if _, ok := st.Session(); ok {
		t.Errorf("Expected corrupt session to read as absent")
	}
}

func TestAllUsersSortedByPoints(t *testing.T) {
	st, _ := newTestStore()

	all := st.AllUsers()
	if len(all) != 5 {
		t.Fatalf("Expected 5 users, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Stats.Points > all[i-1].Stats.Points {
			t.Errorf("Leaderboard out of order at %d: %d > %d", i, all[i].Stats.Points, all[i-1].Stats.Points)
		}
	}
	if all[0].EmailOrPhone != "9999999995" {
		t.Errorf("Expected top seed user first, got %s", all[0].EmailOrPhone)
	}
}
