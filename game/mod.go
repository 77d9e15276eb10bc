package game

import "time"

// NumSquares is the number of playable squares on the board.
const NumSquares = 32

type Player uint8

const (
	NoPlayer Player = iota
	Red
	White
)

// Opponent returns the other player. NoPlayer has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case Red:
		return White
	case White:
		return Red
	default:
		return NoPlayer
	}
}

func (p Player) String() string {
	switch p {
	case Red:
		return "red"
	case White:
		return "white"
	default:
		return "none"
	}
}

// Cell is the content of a square. Men carry the owner's bit, kings add the King flag.
type Cell uint8

const (
	Empty     Cell = 0
	RedMan    Cell = 1
	WhiteMan  Cell = 2
	King      Cell = 4
	RedKing        = RedMan | King
	WhiteKing      = WhiteMan | King
	Invalid   Cell = 8
)

// Owner returns the player owning the piece, or NoPlayer for empty and invalid squares.
func (c Cell) Owner() Player {
	if c == Invalid {
		return NoPlayer
	}
	switch c &^ King {
	case RedMan:
		return Red
	case WhiteMan:
		return White
	default:
		return NoPlayer
	}
}

func (c Cell) IsKing() bool {
	return c != Invalid && c&King != 0
}

// Position is a read-only game position. Operations on Position always return a new value.
type Position interface {
	// Player returns the player to move.
	Player() Player
	IsEOG() bool
	IsWinner(player Player) bool
	At(square int) Cell
	// Successors returns every position reachable by one legal move, in generation order.
	Successors() []Position
	// Pass returns the same placement with the opponent to move.
	Pass() Position
}

type Deadline interface {
	TimeUntil() time.Duration
}

type wallClock struct {
	due time.Time
}

// DeadlineAt returns a wall-clock deadline expiring at due.
func DeadlineAt(due time.Time) Deadline {
	return wallClock{due: due}
}

// DeadlineIn returns a wall-clock deadline expiring after d.
func DeadlineIn(d time.Duration) Deadline {
	return wallClock{due: time.Now().Add(d)}
}

func (w wallClock) TimeUntil() time.Duration {
	return time.Until(w.due)
}
