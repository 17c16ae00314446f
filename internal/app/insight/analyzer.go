// Package insight implements the weekly pattern analyzer: a rule-based
// heuristic over saved daily history records. Trend detection, per-weekday
// aggregation, a plain Pearson correlation, and a small set of independent
// insight rules. Not a trained model.
package insight

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/ppoom-app/ppoom/internal/domain"
)

// Trend classifies the week's fatigue direction.
type Trend string

const (
	TrendImproving    Trend = "improving"
	TrendWorsening    Trend = "worsening"
	TrendStable       Trend = "stable"
	TrendInsufficient Trend = "insufficient"
)

// trendThreshold is the mean-fatigue delta (second half vs first half)
// beyond which the week counts as moving.
const trendThreshold = 5.0

// minRecords is the fewest history records AnalyzeWeekly will work with.
const minRecords = 3

// maxInsights caps the insight list.
const maxInsights = 4

// InsightType tags an insight for presentation.
type InsightType string

const (
	InsightWarning  InsightType = "warning"
	InsightPositive InsightType = "positive"
	InsightNeutral  InsightType = "neutral"
)

// Insight is one qualitative observation about the week.
type Insight struct {
	Emoji       string      `json:"emoji"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Type        InsightType `json:"type"`
}

// CorrelationStrength buckets a Pearson coefficient.
type CorrelationStrength string

const (
	CorrelationStrong       CorrelationStrength = "strong"
	CorrelationModerate     CorrelationStrength = "moderate"
	CorrelationWeak         CorrelationStrength = "weak"
	CorrelationInsufficient CorrelationStrength = "insufficient"
)

// minCorrelationPoints is the fewest sleep/fatigue pairs Pearson runs on.
const minCorrelationPoints = 5

// Correlation is the sleep-vs-fatigue relationship over the window.
type Correlation struct {
	Strength CorrelationStrength `json:"strength"`
	R        float64             `json:"r"`
	Points   int                 `json:"points"`
}

// WeeklyReport is the analyzer's full output.
type WeeklyReport struct {
	Trend            Trend       `json:"trend"`
	TrendDescription string      `json:"trend_description"`
	Insights         []Insight   `json:"insights"`
	WorstDay         string      `json:"worst_day"` // weekday with highest mean fatigue
	BestDay          string      `json:"best_day"`  // weekday with lowest mean fatigue
	AvgFatigue       float64     `json:"avg_fatigue"`
	SleepCorrelation Correlation `json:"sleep_correlation"`
}

// AnalyzeWeekly classifies the trend and generates insights over daily
// history records. Fewer than 3 records yields a stable "insufficient"
// report, a sentinel result rather than an error.
func AnalyzeWeekly(records []domain.DailyHistoryRecord) WeeklyReport {
	if len(records) < minRecords {
		return WeeklyReport{
			Trend:            TrendInsufficient,
			TrendDescription: "Not enough days tracked yet — log a few more days for weekly insights.",
			SleepCorrelation: Correlation{Strength: CorrelationInsufficient},
		}
	}

	sorted := make([]domain.DailyHistoryRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	report := WeeklyReport{
		AvgFatigue:       meanFatigue(sorted),
		SleepCorrelation: sleepCorrelation(sorted),
	}
	report.Trend, report.TrendDescription = classifyTrend(sorted)
	report.WorstDay, report.BestDay = extremeWeekdays(sorted)
	report.Insights = generateInsights(sorted, report.SleepCorrelation)
	return report
}

// classifyTrend compares mean fatigue of the chronological first and
// second halves. Odd counts put the middle record in the second half.
func classifyTrend(sorted []domain.DailyHistoryRecord) (Trend, string) {
	half := len(sorted) / 2
	first := meanFatigue(sorted[:half])
	second := meanFatigue(sorted[half:])
	diff := second - first

	switch {
	case diff < -trendThreshold:
		return TrendImproving, fmt.Sprintf("Fatigue is trending down — %.0f points better than earlier in the week.", -diff)
	case diff > trendThreshold:
		return TrendWorsening, fmt.Sprintf("Fatigue is creeping up — %.0f points higher than earlier in the week.", diff)
	default:
		return TrendStable, "Fatigue has held steady through the week."
	}
}

// extremeWeekdays finds the weekdays with the highest and lowest mean
// fatigue. Weekdays derive from the local calendar date string.
func extremeWeekdays(records []domain.DailyHistoryRecord) (worst, best string) {
	sums := make(map[time.Weekday]float64)
	counts := make(map[time.Weekday]int)
	for _, r := range records {
		wd := domain.WeekdayOf(r.Date)
		sums[wd] += float64(r.FatiguePct)
		counts[wd]++
	}

	var worstDay, bestDay time.Weekday
	worstMean, bestMean := math.Inf(-1), math.Inf(1)
	// Iterate in weekday order so ties resolve deterministically.
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		n := counts[wd]
		if n == 0 {
			continue
		}
		mean := sums[wd] / float64(n)
		if mean > worstMean {
			worstMean, worstDay = mean, wd
		}
		if mean < bestMean {
			bestMean, bestDay = mean, wd
		}
	}
	return worstDay.String(), bestDay.String()
}

// sleepCorrelation computes the Pearson coefficient between sleep hours
// and fatigue over records that carry sleep data.
func sleepCorrelation(records []domain.DailyHistoryRecord) Correlation {
	var xs, ys []float64
	for _, r := range records {
		if r.SleepHours > 0 {
			xs = append(xs, r.SleepHours)
			ys = append(ys, float64(r.FatiguePct))
		}
	}
	if len(xs) < minCorrelationPoints {
		return Correlation{Strength: CorrelationInsufficient, Points: len(xs)}
	}

	r := pearson(xs, ys)
	c := Correlation{R: r, Points: len(xs)}
	switch {
	case math.Abs(r) > 0.6:
		c.Strength = CorrelationStrong
	case math.Abs(r) > 0.3:
		c.Strength = CorrelationModerate
	default:
		c.Strength = CorrelationWeak
	}
	return c
}

// pearson is the plain sample correlation coefficient.
// Zero variance on either side yields 0.
func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}

func meanFatigue(records []domain.DailyHistoryRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, r := range records {
		sum += float64(r.FatiguePct)
	}
	return sum / float64(len(records))
}
