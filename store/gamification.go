package store

import "civiclens/models"

// PointsPerReport is the flat reward for an accepted report, regardless of
// the classified severity.
const PointsPerReport = 50

// Rank tiers, highest first.
const (
	RankCityLegend    = "City Legend"
	RankCivicGuardian = "Civic Guardian"
	RankActiveCitizen = "Active Citizen"
	RankNewCitizen    = "New Citizen"
)

// RankFor returns the tier whose threshold is the highest one not exceeding
// points. Below the lowest threshold the caller keeps its current rank, so a
// fresh user stays "New Citizen" until 200 points.
func RankFor(points int, current string) string {
	switch {
	case points >= 3000:
		return RankCityLegend
	case points >= 1000:
		return RankCivicGuardian
	case points >= 200:
		return RankActiveCitizen
	}
	return current
}

// AddReport prepends the report to the report list (most recent first) and
// applies the submitter's reward: one more report counted, PointsPerReport
// points, rank recomputed from the new total. The submitter is resolved by
// the report's userId key snapshot; an unresolvable submitter still gets the
// report stored, with no stats change. When the submitter is the active
// session, the session mirror is refreshed.
//
// Returns the updated report list and the updated submitter (zero-valued if
// the submitter was not found).
func (s *Store) AddReport(report models.ReportSubmission) ([]models.ReportSubmission, models.UserProfile, error) {
	reports := s.LoadReports()
	updated := append([]models.ReportSubmission{report}, reports...)
	if err := s.SaveReports(updated); err != nil {
		return nil, models.UserProfile{}, err
	}

	users := s.LoadUsers()
	user, ok := users[report.UserID]
	if !ok {
		return updated, models.UserProfile{}, nil
	}

	user.Stats.ReportsSubmitted++
	user.Stats.Points += PointsPerReport
	user.Stats.Rank = RankFor(user.Stats.Points, user.Stats.Rank)

	users[user.EmailOrPhone] = user
	if err := s.SaveUsers(users); err != nil {
		return updated, models.UserProfile{}, err
	}

	if session, sok := s.Session(); sok && session.EmailOrPhone == user.EmailOrPhone {
		if err := s.SaveSession(user); err != nil {
			return updated, user, err
		}
	}

	return updated, user, nil
}
