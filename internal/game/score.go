package game

// Points per collection method.
const (
	PointsTilt   = 10
	PointsTouch  = 20
	PointsShake  = 30
	PointsRotate = 50
)

// ScoreKeeper applies award and forfeiture rules to the running totals.
// Points only ever come in through Award; penalties are tracked separately
// and never subtract score.
type ScoreKeeper struct{}

// Award adds points to both the total and the current level score.
func (ScoreKeeper) Award(st *State, points int) {
	st.Score += points
	st.LevelScore += points
}

// Forfeit subtracts the failed attempt's level score from the total and
// zeroes the level score for the retry.
func (ScoreKeeper) Forfeit(st *State) {
	st.Score -= st.LevelScore
	st.LevelScore = 0
}
