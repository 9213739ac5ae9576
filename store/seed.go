package store

import (
	"time"

	"civiclens/models"
)

// seedUsers populate the leaderboard on first run. They are merged into the
// user table additively on every load and never overwrite a real user that
// registered with the same key.
var seedUsers = []models.UserProfile{
	{
		ID:           "m1",
		Name:         "Arjun Reddy",
		EmailOrPhone: "9999999991",
		AvatarURL:    "https://api.dicebear.com/7.x/notionists/svg?seed=Arjun",
		Stats:        models.UserStats{Points: 2450, ReportsSubmitted: 45, CurrentStreak: 5, Rank: "City Legend", Badges: []models.Badge{}},
	},
	{
		ID:           "m2",
		Name:         "Sneha Kapur",
		EmailOrPhone: "9999999992",
		AvatarURL:    "https://api.dicebear.com/7.x/notionists/svg?seed=Sneha",
		Stats:        models.UserStats{Points: 2100, ReportsSubmitted: 38, CurrentStreak: 3, Rank: "Guardian", Badges: []models.Badge{}},
	},
	{
		ID:           "m3",
		Name:         "Mohammed Ali",
		EmailOrPhone: "9999999993",
		AvatarURL:    "https://api.dicebear.com/7.x/notionists/svg?seed=Mohammed",
		Stats:        models.UserStats{Points: 1850, ReportsSubmitted: 30, CurrentStreak: 12, Rank: "Super Citizen", Badges: []models.Badge{}},
	},
	{
		ID:           "m4",
		Name:         "Priya Sharma",
		EmailOrPhone: "9999999994",
		AvatarURL:    "https://api.dicebear.com/7.x/notionists/svg?seed=Priya",
		Stats:        models.UserStats{Points: 950, ReportsSubmitted: 15, CurrentStreak: 1, Rank: "Contributor", Badges: []models.Badge{}},
	},
	{
		ID:           "m5",
		Name:         "Ananya Singh",
		EmailOrPhone: "9999999995",
		AvatarURL:    "https://api.dicebear.com/7.x/notionists/svg?seed=Ananya",
		Stats:        models.UserStats{Points: 3100, ReportsSubmitted: 52, CurrentStreak: 20, Rank: "City Legend", Badges: []models.Badge{}},
	},
}

// badgeCatalog is process-wide immutable configuration.
var badgeCatalog = []models.Badge{
	{ID: "1", Name: "New Citizen", Icon: "🌱", Description: "Joined the platform", EarnedDate: time.Now().Format(time.RFC3339)},
	{ID: "2", Name: "Road Warrior", Icon: "🛣️", Description: "Reported 5 road issues"},
	{ID: "3", Name: "Clean City", Icon: "🧹", Description: "Reported 5 garbage issues"},
	{ID: "4", Name: "Guardian", Icon: "🛡️", Description: "Earned 500 points"},
}

// Badges returns the static badge catalog.
func Badges() []models.Badge {
	return badgeCatalog
}
