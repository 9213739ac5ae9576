package store

import (
	"errors"
	"reflect"
	"testing"

	"civiclens/models"
)

func testProfile(key, name string) models.UserProfile {
	return models.UserProfile{
		ID:           "id-" + key,
		Name:         name,
		EmailOrPhone: key,
		AvatarURL:    "https://api.dicebear.com/7.x/notionists/svg?seed=" + name,
		Stats: models.UserStats{
			CurrentStreak: 1,
			Rank:          RankNewCitizen,
			Badges:        []models.Badge{},
		},
	}
}

func TestRegisterThenLogin(t *testing.T) {
	st, _ := newTestStore()

	profile := testProfile("7000000001", "Kiran")
	registered, err := st.Register(profile)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if !reflect.DeepEqual(registered, profile) {
		t.Errorf("Register returned a different profile: %+v", registered)
	}

	got, ok := st.Login("7000000001")
	if !ok {
		t.Fatalf("Login did not find the registered user")
	}
	if !reflect.DeepEqual(got, profile) {
		t.Errorf("Login returned %+v, want %+v", got, profile)
	}
}

func TestLoginUnknownKey(t *testing.T) {
	st, _ := newTestStore()

	if _, ok := st.Login("0000000000"); ok {
		t.Errorf("Expected login to miss for an unknown key")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	st, _ := newTestStore()

	first := testProfile("7000000002", "First")
	if _, err := st.Register(first); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	second := testProfile("7000000002", "Second")
	_, err := st.Register(second)
	if !errors.Is(err, ErrDuplicateUser) {
		t.Errorf("Expected ErrDuplicateUser, got %v", err)
	}

	// The existing record must be untouched
	got, ok := st.Login("7000000002")
	if !ok || got.Name != "First" {
		t.Errorf("Duplicate register altered the stored record: %+v", got)
	}
}

func TestUpdateProfileRefreshesSession(t *testing.T) {
	st, _ := newTestStore()

	profile := testProfile("7000000003", "Before")
	if _, err := st.Register(profile); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := st.SaveSession(profile); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	profile.Name = "After"
	if err := st.UpdateProfile(profile); err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	stored, _ := st.Login("7000000003")
	if stored.Name != "After" {
		t.Errorf("Stored record not updated: %+v", stored)
	}
	session, ok := st.Session()
	if !ok || session.Name != "After" {
		t.Errorf("Session mirror not refreshed: %+v", session)
	}
	if !reflect.DeepEqual(stored, session) {
		t.Errorf("Stored record and session mirror differ: %+v vs %+v", stored, session)
	}
}

func TestUpdateProfileLeavesOtherSessionAlone(t *testing.T) {
	st, _ := newTestStore()

	active := testProfile("7000000004", "Active")
	other := testProfile("7000000005", "Other")
	if _, err := st.Register(active); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := st.Register(other); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := st.SaveSession(active); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	other.Name = "Renamed"
	if err := st.UpdateProfile(other); err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	session, ok := st.Session()
	if !ok || session.Name != "Active" {
		t.Errorf("Updating another user touched the session mirror: %+v", session)
	}
}

func TestLogoutKeepsUserTable(t *testing.T) {
	st, _ := newTestStore()

	profile := testProfile("7000000006", "Stays")
	if _, err := st.Register(profile); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := st.SaveSession(profile); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	if err := st.Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	if _, ok := st.Session(); ok {
		t.Errorf("Expected no session after logout")
	}
	if _, ok := st.Login("7000000006"); !ok {
		t.Errorf("Logout removed the user record")
	}
}
