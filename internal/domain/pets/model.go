package pets

import "time"

// Kind define las especies soportadas.
// @Enum dog, cat, rabbit, fish, bird
type Kind string

const (
	KindDog    Kind = "dog"
	KindCat    Kind = "cat"
	KindRabbit Kind = "rabbit"
	KindFish   Kind = "fish"
	KindBird   Kind = "bird"
)

// Mood define el humor con el que se registró la mascota.
// @Enum happy, hungry, lazy, sulky, busy, sleepy
type Mood string

const (
	MoodHappy  Mood = "happy"
	MoodHungry Mood = "hungry"
	MoodLazy   Mood = "lazy"
	MoodSulky  Mood = "sulky"
	MoodBusy   Mood = "busy"
	MoodSleepy Mood = "sleepy"
)

var (
	validKinds = map[Kind]struct{}{KindDog: {}, KindCat: {}, KindRabbit: {}, KindFish: {}, KindBird: {}}
	validMoods = map[Mood]struct{}{MoodHappy: {}, MoodHungry: {}, MoodLazy: {}, MoodSulky: {}, MoodBusy: {}, MoodSleepy: {}}
)

// Pet es un registro dependiente de un friend; se borra de forma lógica (DeletedAt).
type Pet struct {
	ID       string
	FriendID string

	Name string
	Kind Kind
	Mood Mood

	Seeded bool

	CreatedAt time.Time
	DeletedAt *time.Time
}

func (p Pet) Deleted() bool { return p.DeletedAt != nil }
