package digest

import (
	"fmt"

	"github.com/hematwoi/backend/internal/models"
	"github.com/hematwoi/backend/internal/types"
	"github.com/shopspring/decimal"
)

// noWeeklyTransactions is the fixed insight when the week has no expenses.
const noWeeklyTransactions = "No transactions recorded this week yet."

// insightSentence builds the natural-language insight for the digest.
//
// It picks the category with the largest expense total in the current
// week, states how often and how much was spent on it, and compares the
// week against that category's historical weekly average. Without any
// history the comparison clause is omitted.
func insightSentence(weekTransactions []models.Transaction, weeklyByCategory map[string]map[string]decimal.Decimal, weekStart types.Date) string {
	if len(weekTransactions) == 0 {
		return noWeeklyTransactions
	}

	totals := map[string]decimal.Decimal{}
	counts := map[string]int{}
	names := map[string]string{}

	for _, t := range weekTransactions {
		key := categoryKey(t)
		totals[key] = totals[key].Add(t.Amount)
		counts[key]++
		names[key] = t.CategoryName()
	}

	// Ties break on the bucket key so the sentence is deterministic.
	topKey := ""
	topTotal := decimal.Decimal{}
	first := true
	for key, total := range totals {
		if first || total.GreaterThan(topTotal) || (total.Equal(topTotal) && key < topKey) {
			topKey = key
			topTotal = total
			first = false
		}
	}

	sentence := fmt.Sprintf("You spent Rp%s on %s %s this week.",
		topTotal.StringFixed(0), names[topKey], timesPhrase(counts[topKey]))

	average := meanExcluding(weeklyByCategory[topKey], weekStart.String())
	if average.IsZero() {
		return sentence
	}

	ratio := safePct(topTotal, average)
	switch {
	case ratio.GreaterThan(oneHundred):
		sentence += fmt.Sprintf(" That is %s%% above your weekly average for this category.",
			ratio.Sub(oneHundred).StringFixed(0))
	case ratio.LessThan(oneHundred):
		sentence += fmt.Sprintf(" That is %s%% below your weekly average for this category.",
			oneHundred.Sub(ratio).StringFixed(0))
	default:
		sentence += " That is right at your weekly average for this category."
	}

	return sentence
}

func timesPhrase(count int) string {
	if count == 1 {
		return "once"
	}

	return fmt.Sprintf("%d times", count)
}
