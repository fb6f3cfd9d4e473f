package models

// Grade is one recorded score. At most one row exists per
// (student, subject, teacher) triple; re-recording overwrites the score
// in place.
type Grade struct {
	ID        string
	StudentID string
	Subject   string
	Score     float64
	TeacherID string
}

// ScoreMin and ScoreMax bound valid scores (inclusive).
const (
	ScoreMin = 0.0
	ScoreMax = 10.0
)

// ValidScore reports whether score lies in the closed interval [0, 10].
func ValidScore(score float64) bool {
	return score >= ScoreMin && score <= ScoreMax
}
