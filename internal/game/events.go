package game

// Event is a lifecycle notification emitted by a tick or a command.
type Event interface {
	isEvent()
}

type SoundKind int

const (
	SoundWall SoundKind = iota
	SoundPaddle
)

// SoundEvent asks the audio collaborator for one ping. Only emitted when
// sound is enabled in the match configuration.
type SoundEvent struct {
	Kind SoundKind
}

type Player int

const (
	PlayerUser Player = iota
	PlayerOpponent
)

func (p Player) String() string {
	if p == PlayerUser {
		return "user"
	}
	return "opponent"
}

type PointScored struct {
	Player        Player
	UserScore     int
	OpponentScore int
}

type LifeLost struct {
	Remaining int
}

type MatchEnded struct {
	Mode    Mode
	Outcome Outcome
	Summary string
	// Result is the user's score in standard mode and the survived whole
	// seconds in survival mode.
	Result int
}

type HighScoreBeaten struct {
	Mode     Mode
	Value    int
	Previous int
}

func (SoundEvent) isEvent()      {}
func (PointScored) isEvent()     {}
func (LifeLost) isEvent()        {}
func (MatchEnded) isEvent()      {}
func (HighScoreBeaten) isEvent() {}
