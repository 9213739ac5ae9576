package models

// UserStats tracks a user's gamification state. Points and ReportsSubmitted
// only ever grow; Rank is derived from Points by the store's rank table.
type UserStats struct {
	Points           int     `json:"points"`
	ReportsSubmitted int     `json:"reportsSubmitted"`
	CurrentStreak    int     `json:"currentStreak"`
	Rank             string  `json:"rank"`
	Badges           []Badge `json:"badges"`
}

// UserProfile defines a user entity. EmailOrPhone is the natural key in the
// user table; ID is an opaque identifier assigned at registration and never
// reassigned.
type UserProfile struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	EmailOrPhone string    `json:"emailOrPhone"`
	Password     string    `json:"password,omitempty"`
	AvatarURL    string    `json:"avatarUrl,omitempty"`
	Stats        UserStats `json:"stats"`
}
