package fatigue

import "fmt"

// Message returns the companion's qualitative read of a score.
func Message(score int) string {
	switch {
	case score <= 20:
		return "Ppoom is bouncing! You're full of energy today."
	case score <= 40:
		return "Feeling good — a nice steady day."
	case score <= 60:
		return "A little worn. Pace yourself this afternoon."
	case score <= 80:
		return "Ppoom looks tired. Time to slow down."
	default:
		return "Running on empty. Please rest — everything else can wait."
	}
}

// Recommend returns a recovery recommendation selected by threshold bands
// over the score and secondary sleep/screen signals. The strongest signal
// wins; ties fall through to the score band.
func Recommend(score int, sleepHours, screenHours float64) string {
	if sleepHours > 0 && sleepHours < 6 {
		return fmt.Sprintf("You slept %.1f hours. An earlier night tonight would help more than anything else.", sleepHours)
	}
	if screenHours > 6 {
		return fmt.Sprintf("%.1f hours of screen time today. Try a 20-minute screen break every hour.", screenHours)
	}

	switch {
	case score <= 30:
		return "Great shape! A workout or that task you've been putting off would land well today."
	case score <= 60:
		return "Mix in short breaks — a 10-minute walk between focus blocks keeps the score from climbing."
	case score <= 80:
		return "Wind down early: light stretching, warm shower, no heavy work after dinner."
	default:
		return "Drop non-essential plans and prioritize sleep. Tomorrow starts with tonight."
	}
}
