package roster

// lowBudgetThreshold is the percentage below which the budget gauge turns
// into a warning.
const lowBudgetThreshold = 10.0

// BudgetGauge is the derived state of the budget-remaining bar.
type BudgetGauge struct {
	// Percent is the remaining budget share, clamped to [0, 100].
	Percent float64
	// Low marks a critical budget (below 10% remaining).
	Low bool
	// Known is false when the team carries no total budget, in which
	// case no bar is rendered.
	Known bool
}

// Gauge computes the budget bar state from the remaining and total budget.
func Gauge(left, total float64) BudgetGauge {
	if total <= 0 {
		return BudgetGauge{}
	}
	pct := left / total * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return BudgetGauge{
		Percent: pct,
		Low:     pct < lowBudgetThreshold,
		Known:   true,
	}
}
