package engine

// TurnState is the phase the simulation is in; advanced once per tick by the end-turn system
type TurnState uint8

const (
	AwaitingInput TurnState = iota
	PlayerTurn
	MonsterTurn
	GameOver
	Victory
	NextLevel
)

func (s TurnState) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting_input"
	case PlayerTurn:
		return "player_turn"
	case MonsterTurn:
		return "monster_turn"
	case GameOver:
		return "game_over"
	case Victory:
		return "victory"
	case NextLevel:
		return "next_level"
	}
	return "unknown"
}

// Terminal reports whether only an external restart leaves this state
func (s TurnState) Terminal() bool {
	return s == GameOver || s == Victory
}

// Advance is the unconditional successor after a phase completes, before end-of-phase checks
func (s TurnState) Advance() TurnState {
	switch s {
	case PlayerTurn:
		return MonsterTurn
	case MonsterTurn:
		return AwaitingInput
	}
	return s
}
