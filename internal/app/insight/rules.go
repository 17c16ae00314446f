package insight

import (
	"fmt"

	"github.com/ppoom-app/ppoom/internal/domain"
)

// Rule thresholds. Each rule below is independent and optional; their
// source order is the only priority.
const (
	weekendGapThreshold   = 10.0
	shortSleepThreshold   = 6.0
	goodSleepThreshold    = 7.0
	lowStepThreshold      = 4000
	highStepThreshold     = 8000
	highFatigueThreshold  = 70
	highFatigueRunLength  = 3
)

// generateInsights runs every rule over the chronologically sorted records
// and keeps at most maxInsights results, in source order.
func generateInsights(sorted []domain.DailyHistoryRecord, corr Correlation) []Insight {
	var out []Insight
	add := func(ins *Insight) {
		if ins != nil && len(out) < maxInsights {
			out = append(out, *ins)
		}
	}

	add(weekendGapInsight(sorted))
	add(sleepAverageInsight(sorted))
	add(stepAverageInsight(sorted))
	add(highFatigueRunInsight(sorted))
	add(correlationInsight(corr))
	return out
}

// weekendGapInsight fires when weekday and weekend mean fatigue differ by
// more than 10 points, in either direction.
func weekendGapInsight(records []domain.DailyHistoryRecord) *Insight {
	var wkSum, weSum float64
	var wkN, weN int
	for _, r := range records {
		if domain.IsWeekend(r.Date) {
			weSum += float64(r.FatiguePct)
			weN++
		} else {
			wkSum += float64(r.FatiguePct)
			wkN++
		}
	}
	if wkN == 0 || weN == 0 {
		return nil
	}

	gap := wkSum/float64(wkN) - weSum/float64(weN)
	if gap > weekendGapThreshold {
		return &Insight{
			Emoji: "💼", Title: "Weekdays are draining you",
			Description: fmt.Sprintf("Your weekday fatigue runs %.0f points above your weekends. Something in the work routine is costing you.", gap),
			Type:        InsightWarning,
		}
	}
	if -gap > weekendGapThreshold {
		return &Insight{
			Emoji: "🎢", Title: "Weekends wear you out",
			Description: fmt.Sprintf("Weekend fatigue runs %.0f points above your weekdays. Weekend plans may be crowding out recovery.", -gap),
			Type:        InsightWarning,
		}
	}
	return nil
}

// sleepAverageInsight warns on short average sleep or applauds a solid one.
func sleepAverageInsight(records []domain.DailyHistoryRecord) *Insight {
	var sum float64
	var n int
	for _, r := range records {
		if r.SleepHours > 0 {
			sum += r.SleepHours
			n++
		}
	}
	if n == 0 {
		return nil
	}

	avg := sum / float64(n)
	if avg < shortSleepThreshold {
		return &Insight{
			Emoji: "😪", Title: "Sleep debt building",
			Description: fmt.Sprintf("You averaged %.1f hours of sleep. Under 6 hours compounds fast, so protect tonight.", avg),
			Type:        InsightWarning,
		}
	}
	if avg >= goodSleepThreshold {
		return &Insight{
			Emoji: "🌙", Title: "Solid sleep habit",
			Description: fmt.Sprintf("You averaged %.1f hours of sleep this week. Keep that rhythm.", avg),
			Type:        InsightPositive,
		}
	}
	return nil
}

// stepAverageInsight reads movement from the daily step counts.
func stepAverageInsight(records []domain.DailyHistoryRecord) *Insight {
	var sum, n int
	for _, r := range records {
		if r.StepCount > 0 {
			sum += r.StepCount
			n++
		}
	}
	if n == 0 {
		return nil
	}

	avg := sum / n
	if avg < lowStepThreshold {
		return &Insight{
			Emoji: "🪑", Title: "Very little movement",
			Description: fmt.Sprintf("You averaged %d steps a day. Even a short daily walk would move the needle.", avg),
			Type:        InsightWarning,
		}
	}
	if avg >= highStepThreshold {
		return &Insight{
			Emoji: "🏃", Title: "Great activity level",
			Description: fmt.Sprintf("You averaged %d steps a day. Movement is clearly part of your week.", avg),
			Type:        InsightPositive,
		}
	}
	return nil
}

// highFatigueRunInsight flags 3+ consecutive days at or above 70.
func highFatigueRunInsight(sorted []domain.DailyHistoryRecord) *Insight {
	run, longest := 0, 0
	for _, r := range sorted {
		if r.FatiguePct >= highFatigueThreshold {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	if longest < highFatigueRunLength {
		return nil
	}
	return &Insight{
		Emoji: "🔋", Title: "Running hot for days",
		Description: fmt.Sprintf("%d consecutive days at fatigue 70 or above. This is burnout territory — plan real recovery.", longest),
		Type:        InsightWarning,
	}
}

// correlationInsight surfaces a strong sleep↔fatigue relationship.
func correlationInsight(corr Correlation) *Insight {
	if corr.Strength != CorrelationStrong {
		return nil
	}
	return &Insight{
		Emoji: "🔍", Title: "Sleep drives your fatigue",
		Description: fmt.Sprintf("Sleep and fatigue correlate strongly for you (r=%.2f). Sleep is your highest-leverage lever.", corr.R),
		Type:        InsightNeutral,
	}
}
