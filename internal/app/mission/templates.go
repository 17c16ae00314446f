package mission

import "github.com/ppoom-app/ppoom/internal/domain"

// pool is the static mission template catalog: 6 categories, 10 templates
// each (4 easy, 3 normal, 3 challenge), 60 total. Reference data only;
// the engine never mutates it.
var pool = []domain.MissionTemplate{
	// ── Exercise ───────────────────────────────────────────────────────
	{ID: "exercise-easy-1", Category: domain.MissionExercise, Difficulty: domain.DifficultyEasy, Title: "Stand and stretch", Description: "Stand up and stretch your arms overhead for 2 minutes.", Emoji: "🙆", ExpReward: 10},
	{ID: "exercise-easy-2", Category: domain.MissionExercise, Difficulty: domain.DifficultyEasy, Title: "Take the stairs", Description: "Skip the elevator once today.", Emoji: "🪜", ExpReward: 10},
	{ID: "exercise-easy-3", Category: domain.MissionExercise, Difficulty: domain.DifficultyEasy, Title: "Neck rolls", Description: "Slow neck circles, 10 each direction.", Emoji: "💆", ExpReward: 10},
	{ID: "exercise-easy-4", Category: domain.MissionExercise, Difficulty: domain.DifficultyEasy, Title: "Walk a lap", Description: "A 5-minute walk around the block or office.", Emoji: "🚶", ExpReward: 10},
	{ID: "exercise-normal-1", Category: domain.MissionExercise, Difficulty: domain.DifficultyNormal, Title: "20-minute walk", Description: "Walk for 20 minutes at a comfortable pace.", Emoji: "🚶", ExpReward: 20},
	{ID: "exercise-normal-2", Category: domain.MissionExercise, Difficulty: domain.DifficultyNormal, Title: "Bodyweight set", Description: "2 sets of squats, push-ups, and planks.", Emoji: "💪", ExpReward: 20},
	{ID: "exercise-normal-3", Category: domain.MissionExercise, Difficulty: domain.DifficultyNormal, Title: "Stretch routine", Description: "A full 15-minute stretching routine.", Emoji: "🧘", ExpReward: 20},
	{ID: "exercise-challenge-1", Category: domain.MissionExercise, Difficulty: domain.DifficultyChallenge, Title: "Full workout", Description: "A 45-minute workout of your choice.", Emoji: "🏋️", ExpReward: 35},
	{ID: "exercise-challenge-2", Category: domain.MissionExercise, Difficulty: domain.DifficultyChallenge, Title: "10,000 steps", Description: "Hit 10,000 steps before midnight.", Emoji: "👟", ExpReward: 35},
	{ID: "exercise-challenge-3", Category: domain.MissionExercise, Difficulty: domain.DifficultyChallenge, Title: "Go for a run", Description: "Run for at least 30 minutes.", Emoji: "🏃", ExpReward: 35},

	// ── Rest ───────────────────────────────────────────────────────────
	{ID: "rest-easy-1", Category: domain.MissionRest, Difficulty: domain.DifficultyEasy, Title: "Close your eyes", Description: "Rest your eyes for 5 minutes, no screens.", Emoji: "😌", ExpReward: 10},
	{ID: "rest-easy-2", Category: domain.MissionRest, Difficulty: domain.DifficultyEasy, Title: "Power pause", Description: "Do absolutely nothing for 10 minutes.", Emoji: "🛋️", ExpReward: 10},
	{ID: "rest-easy-3", Category: domain.MissionRest, Difficulty: domain.DifficultyEasy, Title: "Warm drink break", Description: "Make a warm drink and sit with it, away from your desk.", Emoji: "🍵", ExpReward: 10},
	{ID: "rest-easy-4", Category: domain.MissionRest, Difficulty: domain.DifficultyEasy, Title: "Lie down", Description: "Lie flat for 10 minutes and let your back unload.", Emoji: "🛏️", ExpReward: 10},
	{ID: "rest-normal-1", Category: domain.MissionRest, Difficulty: domain.DifficultyNormal, Title: "Power nap", Description: "A 20-minute nap — set an alarm.", Emoji: "😴", ExpReward: 20},
	{ID: "rest-normal-2", Category: domain.MissionRest, Difficulty: domain.DifficultyNormal, Title: "Early wind-down", Description: "Start your bedtime routine 30 minutes early.", Emoji: "🌙", ExpReward: 20},
	{ID: "rest-normal-3", Category: domain.MissionRest, Difficulty: domain.DifficultyNormal, Title: "Bath time", Description: "Take a long warm bath or shower.", Emoji: "🛁", ExpReward: 20},
	{ID: "rest-challenge-1", Category: domain.MissionRest, Difficulty: domain.DifficultyChallenge, Title: "In bed by 10", Description: "Lights out before 22:30 tonight.", Emoji: "🌃", ExpReward: 35},
	{ID: "rest-challenge-2", Category: domain.MissionRest, Difficulty: domain.DifficultyChallenge, Title: "8-hour night", Description: "Get a full 8 hours of sleep tonight.", Emoji: "🛌", ExpReward: 35},
	{ID: "rest-challenge-3", Category: domain.MissionRest, Difficulty: domain.DifficultyChallenge, Title: "Lazy afternoon", Description: "Block 2 hours with no plans and no obligations.", Emoji: "🦥", ExpReward: 35},

	// ── Mindfulness ────────────────────────────────────────────────────
	{ID: "mindfulness-easy-1", Category: domain.MissionMindfulness, Difficulty: domain.DifficultyEasy, Title: "Three deep breaths", Description: "Three slow breaths: in for 4, out for 6.", Emoji: "🌬️", ExpReward: 10},
	{ID: "mindfulness-easy-2", Category: domain.MissionMindfulness, Difficulty: domain.DifficultyEasy, Title: "Gratitude note", Description: "Write down one thing you're grateful for.", Emoji: "📝", ExpReward: 10},
	{ID: "mindfulness-easy-3", Category: domain.MissionMindfulness, Difficulty: domain.DifficultyEasy, Title: "Look outside", Description: "Watch the sky or street for 3 minutes.", Emoji: "🪟", ExpReward: 10},
	{ID: "mindfulness-easy-4", Category: domain.MissionMindfulness, Difficulty: domain.DifficultyEasy, Title: "One-song pause", Description: "Listen to one song doing nothing else.", Emoji: "🎧", ExpReward: 10},
	{ID: "mindfulness-normal-1", Category: domain.MissionMindfulness, Difficulty: domain.DifficultyNormal, Title: "10-minute meditation", Description: "A guided or silent 10-minute meditation.", Emoji: "🧘", ExpReward: 20},
	{ID: "mindfulness-normal-2", Category: domain.MissionMindfulness, Difficulty: domain.DifficultyNormal, Title: "Journal", Description: "Write freely for 10 minutes about your day.", Emoji: "📓", ExpReward: 20},
	{ID: "mindfulness-normal-3", Category: domain.MissionMindfulness, Difficulty: domain.DifficultyNormal, Title: "Body scan", Description: "A lying-down body scan from toes to head.", Emoji: "🫧", ExpReward: 20},
	{ID: "mindfulness-challenge-1", Category: domain.MissionMindfulness, Difficulty: domain.DifficultyChallenge, Title: "30-minute sit", Description: "A full 30-minute meditation session.", Emoji: "🕉️", ExpReward: 35},
	{ID: "mindfulness-challenge-2", Category: domain.MissionMindfulness, Difficulty: domain.DifficultyChallenge, Title: "Silent hour", Description: "One hour with no input: no phone, music, or talk.", Emoji: "🤫", ExpReward: 35},
	{ID: "mindfulness-challenge-3", Category: domain.MissionMindfulness, Difficulty: domain.DifficultyChallenge, Title: "Morning pages", Description: "Three full pages of stream-of-consciousness writing.", Emoji: "✍️", ExpReward: 35},

	// ── Social ─────────────────────────────────────────────────────────
	{ID: "social-easy-1", Category: domain.MissionSocial, Difficulty: domain.DifficultyEasy, Title: "Send a meme", Description: "Make one friend laugh today.", Emoji: "😂", ExpReward: 10},
	{ID: "social-easy-2", Category: domain.MissionSocial, Difficulty: domain.DifficultyEasy, Title: "Check in", Description: "Text someone you haven't talked to this week.", Emoji: "💬", ExpReward: 10},
	{ID: "social-easy-3", Category: domain.MissionSocial, Difficulty: domain.DifficultyEasy, Title: "Say thanks", Description: "Thank someone specifically for something they did.", Emoji: "🙏", ExpReward: 10},
	{ID: "social-easy-4", Category: domain.MissionSocial, Difficulty: domain.DifficultyEasy, Title: "Small talk", Description: "Have a real chat with a colleague or neighbor.", Emoji: "👋", ExpReward: 10},
	{ID: "social-normal-1", Category: domain.MissionSocial, Difficulty: domain.DifficultyNormal, Title: "Call someone", Description: "A 15-minute voice call with family or a friend.", Emoji: "📞", ExpReward: 20},
	{ID: "social-normal-2", Category: domain.MissionSocial, Difficulty: domain.DifficultyNormal, Title: "Shared meal", Description: "Eat one meal with someone, phones away.", Emoji: "🍽️", ExpReward: 20},
	{ID: "social-normal-3", Category: domain.MissionSocial, Difficulty: domain.DifficultyNormal, Title: "Make plans", Description: "Put a date on the calendar with someone you miss.", Emoji: "📅", ExpReward: 20},
	{ID: "social-challenge-1", Category: domain.MissionSocial, Difficulty: domain.DifficultyChallenge, Title: "Meet up", Description: "Spend an evening with friends in person.", Emoji: "🎉", ExpReward: 35},
	{ID: "social-challenge-2", Category: domain.MissionSocial, Difficulty: domain.DifficultyChallenge, Title: "Long call home", Description: "An hour-long call with family.", Emoji: "🏠", ExpReward: 35},
	{ID: "social-challenge-3", Category: domain.MissionSocial, Difficulty: domain.DifficultyChallenge, Title: "Host something", Description: "Invite someone over for dinner or games.", Emoji: "🎲", ExpReward: 35},

	// ── Nutrition ──────────────────────────────────────────────────────
	{ID: "nutrition-easy-1", Category: domain.MissionNutrition, Difficulty: domain.DifficultyEasy, Title: "Glass of water", Description: "Drink a full glass of water right now.", Emoji: "💧", ExpReward: 10},
	{ID: "nutrition-easy-2", Category: domain.MissionNutrition, Difficulty: domain.DifficultyEasy, Title: "Eat a fruit", Description: "One piece of fruit today.", Emoji: "🍎", ExpReward: 10},
	{ID: "nutrition-easy-3", Category: domain.MissionNutrition, Difficulty: domain.DifficultyEasy, Title: "Skip the soda", Description: "Swap one sugary drink for water or tea.", Emoji: "🥤", ExpReward: 10},
	{ID: "nutrition-easy-4", Category: domain.MissionNutrition, Difficulty: domain.DifficultyEasy, Title: "No late snack", Description: "Nothing to eat after 21:00 tonight.", Emoji: "🌜", ExpReward: 10},
	{ID: "nutrition-normal-1", Category: domain.MissionNutrition, Difficulty: domain.DifficultyNormal, Title: "Cook at home", Description: "Cook one meal yourself instead of ordering.", Emoji: "🍳", ExpReward: 20},
	{ID: "nutrition-normal-2", Category: domain.MissionNutrition, Difficulty: domain.DifficultyNormal, Title: "Veggie plate", Description: "Make vegetables half of one meal.", Emoji: "🥗", ExpReward: 20},
	{ID: "nutrition-normal-3", Category: domain.MissionNutrition, Difficulty: domain.DifficultyNormal, Title: "Hydration goal", Description: "Drink 8 glasses of water across the day.", Emoji: "🚰", ExpReward: 20},
	{ID: "nutrition-challenge-1", Category: domain.MissionNutrition, Difficulty: domain.DifficultyChallenge, Title: "No caffeine day", Description: "A full day without coffee or energy drinks.", Emoji: "☕", ExpReward: 35},
	{ID: "nutrition-challenge-2", Category: domain.MissionNutrition, Difficulty: domain.DifficultyChallenge, Title: "Three real meals", Description: "Three home-prepared meals, no delivery.", Emoji: "🥘", ExpReward: 35},
	{ID: "nutrition-challenge-3", Category: domain.MissionNutrition, Difficulty: domain.DifficultyChallenge, Title: "Sugar-free day", Description: "No added sugar until tomorrow.", Emoji: "🚫", ExpReward: 35},

	// ── Digital ────────────────────────────────────────────────────────
	{ID: "digital-easy-1", Category: domain.MissionDigital, Difficulty: domain.DifficultyEasy, Title: "Phone-free meal", Description: "One meal without looking at your phone.", Emoji: "📵", ExpReward: 10},
	{ID: "digital-easy-2", Category: domain.MissionDigital, Difficulty: domain.DifficultyEasy, Title: "Mute one app", Description: "Silence notifications for your noisiest app.", Emoji: "🔕", ExpReward: 10},
	{ID: "digital-easy-3", Category: domain.MissionDigital, Difficulty: domain.DifficultyEasy, Title: "20-20-20", Description: "Every 20 minutes, look 20 feet away for 20 seconds.", Emoji: "👀", ExpReward: 10},
	{ID: "digital-easy-4", Category: domain.MissionDigital, Difficulty: domain.DifficultyEasy, Title: "Clean home screen", Description: "Move one doomscroll app off your home screen.", Emoji: "🧹", ExpReward: 10},
	{ID: "digital-normal-1", Category: domain.MissionDigital, Difficulty: domain.DifficultyNormal, Title: "Screen-free hour", Description: "One full hour with no screens before bed.", Emoji: "🕯️", ExpReward: 20},
	{ID: "digital-normal-2", Category: domain.MissionDigital, Difficulty: domain.DifficultyNormal, Title: "No-scroll morning", Description: "Don't open social media before noon.", Emoji: "🌅", ExpReward: 20},
	{ID: "digital-normal-3", Category: domain.MissionDigital, Difficulty: domain.DifficultyNormal, Title: "Paper over pixels", Description: "Read 20 pages of a physical book.", Emoji: "📖", ExpReward: 20},
	{ID: "digital-challenge-1", Category: domain.MissionDigital, Difficulty: domain.DifficultyChallenge, Title: "Half-day detox", Description: "No recreational screens for 4 waking hours.", Emoji: "🏞️", ExpReward: 35},
	{ID: "digital-challenge-2", Category: domain.MissionDigital, Difficulty: domain.DifficultyChallenge, Title: "Screen curfew", Description: "All screens off from 21:00 until morning.", Emoji: "🌑", ExpReward: 35},
	{ID: "digital-challenge-3", Category: domain.MissionDigital, Difficulty: domain.DifficultyChallenge, Title: "Under 2 hours", Description: "Keep total phone screen time under 2 hours.", Emoji: "⏳", ExpReward: 35},
}

// Pool returns the full template catalog.
func Pool() []domain.MissionTemplate {
	out := make([]domain.MissionTemplate, len(pool))
	copy(out, pool)
	return out
}

// TemplateByID looks up a template in the static pool.
func TemplateByID(id string) (domain.MissionTemplate, bool) {
	for _, t := range pool {
		if t.ID == id {
			return t, true
		}
	}
	return domain.MissionTemplate{}, false
}
