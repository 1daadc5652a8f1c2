package helpers

import "strings"

// cannedAdvice is one keyword-matched reply of the offline coach. Every
// token in all must appear in the message; if any is non-empty, at least
// one of its tokens must appear too.
type cannedAdvice struct {
	all   []string
	any   []string
	reply string
}

func (a cannedAdvice) matches(lower string) bool {
	for _, token := range a.all {
		if !strings.Contains(lower, token) {
			return false
		}
	}
	if len(a.any) == 0 {
		return true
	}
	for _, token := range a.any {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

// FitBotFallbackReply answers from the canned advice blocks when the
// upstream model is unavailable or unconfigured. Matching is first-hit on
// the lowered message.
func FitBotFallbackReply(message string) string {
	lower := strings.ToLower(message)
	for _, advice := range fitbotAdvice {
		if advice.matches(lower) {
			return advice.reply
		}
	}
	return defaultFitbotReply
}

var fitbotAdvice = []cannedAdvice{
	{any: []string{"push pull", "ppl", "push/pull"}, reply: `**Push Pull Legs (PPL) Split:**

**PUSH DAY (Chest, Shoulders, Triceps)**
- Bench Press: 4x8-10
- Overhead Press: 3x10
- Incline Dumbbell Press: 3x12
- Lateral Raises: 3x15
- Tricep Pushdowns: 3x12

**PULL DAY (Back, Biceps)**
- Deadlifts: 3x5
- Pull-ups/Lat Pulldown: 4x10
- Barbell Rows: 4x10
- Face Pulls: 3x15
- Barbell Curls: 3x12

**LEG DAY (Quads, Hamstrings, Glutes)**
- Squats: 4x8
- Romanian Deadlifts: 3x10
- Leg Press: 3x12
- Leg Curls: 3x12
- Calf Raises: 4x15

**Schedule Options:**
- 3-day: PPL (rest day between each)
- 6-day: PPLPPL (1 rest day)

Great choice for balanced muscle development!`},
	{any: []string{"push-up", "pushup"}, reply: `**Perfect Push-Up Form:**

1. **Start Position** - Hands shoulder-width apart, fingers forward
2. **Body Line** - Straight from head to heels, core tight
3. **Lower Down** - Chest to floor, elbows at 45 degrees
4. **Push Up** - Full arm extension, don't lock elbows

**Pro Tip:** Start with incline push-ups if regular ones are too hard!`},
	{all: []string{"workout"}, any: []string{"full body", "fullbody"}, reply: `**Full Body Workout (3x/week):**

**The Workout:**
- Squats: 3x10
- Bench Press: 3x10
- Barbell Rows: 3x10
- Overhead Press: 3x10
- Deadlifts: 2x5
- Planks: 3x30sec

**Rest:** 60-90 sec between sets
**Schedule:** Mon-Wed-Fri (48hr recovery)

Perfect for beginners or busy schedules!`},
	{any: []string{"upper lower", "upper/lower"}, reply: `**Upper/Lower Split (4 days/week):**

**UPPER A**
- Bench Press: 4x8
- Barbell Rows: 4x8
- Overhead Press: 3x10
- Pull-ups: 3xmax
- Bicep Curls: 2x12

**LOWER A**
- Squats: 4x6
- Romanian Deadlifts: 3x10
- Leg Press: 3x12
- Leg Curls: 3x12
- Calf Raises: 4x15

Upper-Lower-Rest-Upper-Lower-Rest-Rest. Great for intermediate lifters!`},
	{all: []string{"beginner", "workout"}, reply: `**Beginner Workout Plan (3 days/week):**

**Day A - Upper Body**
- Push-ups: 3x10
- Dumbbell Rows: 3x12
- Shoulder Press: 3x10
- Plank: 3x30sec

**Day B - Lower Body**
- Squats: 3x15
- Lunges: 3x10 each leg
- Glute Bridges: 3x15
- Calf Raises: 3x20

Start light, focus on form. Ready to crush it!`},
	{any: []string{"weight loss", "lose weight", "fat"}, reply: `**Fat-Burning Strategy:**

**Best Exercises:**
- HIIT intervals (20-30 min)
- Strength training (builds metabolism)
- Walking 10k steps daily

**Nutrition Keys:**
- Calorie deficit (300-500 cal/day)
- High protein (keeps you full)
- Minimize processed foods

**Quick HIIT Circuit:** 30 sec each, 4 rounds:
Jumping Jacks, Burpees, Mountain Climbers, High Knees

Consistency beats intensity. You've got this!`},
	{any: []string{"muscle", "gain", "build"}, reply: `**Muscle Building Blueprint:**

**Training Principles:**
- Train each muscle 2x/week
- Progressive overload (add weight/reps)
- Focus on compound lifts
- 8-12 rep range for hypertrophy

**Nutrition:**
- Slight calorie surplus (+300-500)
- Protein: 1.6-2.2g per kg bodyweight
- Don't skip carbs (fuel for gains!)
- Sleep 7-9 hours (recovery is key)

**Key Lifts:** Bench, Squat, Deadlift, Rows, OHP

Patience + consistency = gains!`},
	{any: []string{"abs", "core"}, reply: `**Core Crusher Routine:**

**Best Ab Exercises:**
- Plank variations (front, side)
- Dead Bug: 3x10 each side
- Cable Crunches: 3x15
- Hanging Leg Raises: 3x12
- Ab Wheel Rollouts: 3x10

**Truth Bomb:** Abs are made in the kitchen!
You need low body fat (10-14% for men, 16-20% for women) to see definition.

**The Formula:** Core training + cardio + clean eating = visible abs`},
	{any: []string{"nutrition", "eat", "food", "diet"}, reply: `**Fitness Nutrition Guide:**

**Pre-Workout (1-2hrs before):**
Oatmeal + banana, or toast + peanut butter

**Post-Workout (within 1hr):**
Protein shake + fruit, or chicken + rice

**Daily Targets:**
- Protein: Palm-sized portion each meal
- Carbs: Fist-sized portion
- Veggies: Half your plate
- Water: 2-3 liters

**Quick Meal Prep Ideas:**
- Grilled chicken + quinoa + broccoli
- Greek yogurt + berries + granola
- Eggs + avocado + whole grain toast`},
	{any: []string{"recovery", "rest", "sore"}, reply: `**Recovery Optimization:**

**Sleep (Most Important!)**
- 7-9 hours per night
- Consistent sleep schedule
- Cool, dark room

**Active Recovery:**
- Light walking or swimming
- Foam rolling (10-15 min)
- Stretching or yoga

**If Very Sore:**
- Take an extra rest day
- Light stretching only
- Contrast showers (hot/cold)

Remember: Muscles grow during rest, not in the gym!`},
	{any: []string{"how often", "frequency"}, reply: `**Training Frequency Guide:**

**Beginners:** 3 days/week (full body)
**Intermediate:** 4-5 days/week (upper/lower split)
**Advanced:** 5-6 days/week (PPL or body part split)

**Rest Between Sessions:**
- Same muscle: 48-72 hours
- Different muscles: Can train daily

**Signs You Need Rest:**
- Persistent fatigue
- Strength decreasing
- Poor sleep

Quality > Quantity. Listen to your body!`},
}

const defaultFitbotReply = `Great question! Here's what I recommend:

**Key Principles:**
- Start with clear, specific goals
- Progressive overload in training
- Nutrition supports your goals
- Rest is when you actually improve

Would you like me to dive deeper into:
- Workout programming
- Nutrition planning
- Goal setting
- Recovery strategies

Just ask! I'm here to help you succeed.`
