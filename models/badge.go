package models

// Badge is a static catalog entry. EarnedDate is set only on the copy held
// in a user's stats, never on the catalog itself.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	EarnedDate  string `json:"earnedDate,omitempty"`
}
