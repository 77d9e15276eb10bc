// meta/meta.go
package meta

import "time"

// InitialDepth is the first iterative deepening round.
const InitialDepth = 8

// MaxDepth is the last iterative deepening round.
const MaxDepth = 15

// SafetyMargin is subtracted from every deadline before the search gives up.
const SafetyMargin = 50 * time.Millisecond

// TableCapacity bounds the number of transposition table entries per agent.
const TableCapacity = 1 << 20

// MoveBudget is the wall-clock time given to an agent per move.
const MoveBudget = time.Second

// MaxTurns caps the length of a local game.
const MaxTurns = 300
