package domain

// Mood represents the user's self-reported emotional state.
type Mood string

const (
	MoodSad     Mood = "sad"
	MoodAngry   Mood = "angry"
	MoodHappy   Mood = "happy"
	MoodGood    Mood = "good"
	MoodExcited Mood = "excited"
)

func (m Mood) String() string { return string(m) }

func (m Mood) IsValid() bool {
	switch m {
	case MoodSad, MoodAngry, MoodHappy, MoodGood, MoodExcited:
		return true
	}
	return false
}

// AllMoods returns every mood category in canonical order.
// Aggregations and modal tie-breaks iterate in this order, so it is part
// of the observable contract, not a convenience.
func AllMoods() []Mood {
	return []Mood{MoodSad, MoodAngry, MoodHappy, MoodGood, MoodExcited}
}

// Complexity represents how challenging the user's situation was.
type Complexity string

const (
	ComplexityEasy     Complexity = "easy"
	ComplexityMedium   Complexity = "medium"
	ComplexityHard     Complexity = "hard"
	ComplexityVeryHard Complexity = "very_hard"
)

func (c Complexity) String() string { return string(c) }

func (c Complexity) IsValid() bool {
	switch c {
	case ComplexityEasy, ComplexityMedium, ComplexityHard, ComplexityVeryHard:
		return true
	}
	return false
}

// AllComplexities returns every complexity category in canonical order.
func AllComplexities() []Complexity {
	return []Complexity{ComplexityEasy, ComplexityMedium, ComplexityHard, ComplexityVeryHard}
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleEmployee UserRole = "employee"
	UserRoleAdmin    UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleEmployee, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
