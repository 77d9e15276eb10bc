package game

import (
	"fmt"
	"strings"
)

// DrawMoveLimit is the number of consecutive moves without a capture after which the game is drawn.
const DrawMoveLimit = 50

const rows = 8

// Diagonal steps as (row, column) deltas. Red moves toward higher rows.
var diagonals = [4][2]int{{1, -1}, {1, 1}, {-1, -1}, {-1, 1}}

// Board is a checkers position on the 32 dark squares of an 8x8 board. Square i lies on
// row i/4; Red starts on squares 0..11, White on 20..31 and Red moves first.
type Board struct {
	cells  [NumSquares]Cell
	player Player
	quiet  int // consecutive moves without a capture
	from   int8
	to     int8
	jumps  uint8
}

// NewBoard returns the initial position.
func NewBoard() Board {
	var cells [NumSquares]Cell
	for sq := 0; sq < 12; sq++ {
		cells[sq] = RedMan
	}
	for sq := 20; sq < NumSquares; sq++ {
		cells[sq] = WhiteMan
	}
	return NewBoardFrom(cells, Red)
}

// NewBoardFrom returns a position with the given placement and player to move.
func NewBoardFrom(cells [NumSquares]Cell, player Player) Board {
	return Board{cells: cells, player: player, from: -1, to: -1}
}

// ParseBoard reads 32 cell characters ('.' empty, 'r'/'w' men, 'R'/'W' kings) in square order.
// Whitespace and '/' separators are ignored.
func ParseBoard(s string, player Player) (Board, error) {
	var cells [NumSquares]Cell
	n := 0
	for _, ch := range s {
		if ch == '/' || ch == ' ' || ch == '\n' || ch == '\t' {
			continue
		}
		if n >= NumSquares {
			return Board{}, fmt.Errorf("parse board: more than %d squares", NumSquares)
		}
		switch ch {
		case '.':
			cells[n] = Empty
		case 'r':
			cells[n] = RedMan
		case 'w':
			cells[n] = WhiteMan
		case 'R':
			cells[n] = RedKing
		case 'W':
			cells[n] = WhiteKing
		default:
			return Board{}, fmt.Errorf("parse board: unexpected character %q at square %d", ch, n)
		}
		n++
	}
	if n != NumSquares {
		return Board{}, fmt.Errorf("parse board: got %d squares, want %d", n, NumSquares)
	}
	if player != Red && player != White {
		return Board{}, fmt.Errorf("parse board: invalid player to move %v", player)
	}
	return NewBoardFrom(cells, player), nil
}

func (b Board) Player() Player {
	return b.player
}

func (b Board) At(square int) Cell {
	if square < 0 || square >= NumSquares {
		return Invalid
	}
	return b.cells[square]
}

// LastMove returns the origin and destination squares of the move that produced this position,
// or -1, -1 for a root or passed position.
func (b Board) LastMove() (from, to int) {
	return int(b.from), int(b.to)
}

// Captured returns the number of pieces removed by the move that produced this position.
func (b Board) Captured() int {
	return int(b.jumps)
}

func (b Board) IsEOG() bool {
	return b.quiet >= DrawMoveLimit || !b.hasMove()
}

// IsWinner reports whether player has won: the game is over, it is not a draw, and the
// opponent is to move without a legal move.
func (b Board) IsWinner(player Player) bool {
	if b.quiet >= DrawMoveLimit {
		return false
	}
	return player == b.player.Opponent() && !b.hasMove()
}

func (b Board) Pass() Position {
	next := b
	next.player = b.player.Opponent()
	next.from, next.to, next.jumps = -1, -1, 0
	return next
}

func (b Board) Successors() []Position {
	if b.quiet >= DrawMoveLimit {
		return nil
	}
	if captures := b.captures(); len(captures) > 0 {
		return captures
	}
	return b.steps()
}

func (b Board) hasMove() bool {
	for sq := 0; sq < NumSquares; sq++ {
		piece := b.cells[sq]
		if piece.Owner() != b.player {
			continue
		}
		row, col := coords(sq)
		for _, d := range diagonals {
			if !b.canMove(piece, d) {
				continue
			}
			to := square(row+d[0], col+d[1])
			if to < 0 {
				continue
			}
			if b.cells[to] == Empty {
				return true
			}
			land := square(row+2*d[0], col+2*d[1])
			if land >= 0 && b.cells[to].Owner() == b.player.Opponent() && b.cells[land] == Empty {
				return true
			}
		}
	}
	return false
}

func (b Board) canMove(piece Cell, d [2]int) bool {
	return piece.IsKing() || d[0] == forward(b.player)
}

func (b Board) steps() []Position {
	var out []Position
	for sq := 0; sq < NumSquares; sq++ {
		piece := b.cells[sq]
		if piece.Owner() != b.player {
			continue
		}
		row, col := coords(sq)
		for _, d := range diagonals {
			if !b.canMove(piece, d) {
				continue
			}
			to := square(row+d[0], col+d[1])
			if to < 0 || b.cells[to] != Empty {
				continue
			}
			cells := b.cells
			cells[sq] = Empty
			out = append(out, b.finish(&cells, sq, to, b.crown(piece, to), 0))
		}
	}
	return out
}

func (b Board) captures() []Position {
	var out []Position
	for sq := 0; sq < NumSquares; sq++ {
		piece := b.cells[sq]
		if piece.Owner() != b.player {
			continue
		}
		cells := b.cells
		cells[sq] = Empty
		b.jump(&cells, sq, sq, piece, 0, &out)
	}
	return out
}

// jump extends a capture sequence from square at. Captured pieces stay on the board until the
// move completes so they block landings, and the mask stops them being jumped twice.
func (b Board) jump(cells *[NumSquares]Cell, from, at int, piece Cell, captured uint32, out *[]Position) {
	row, col := coords(at)
	extended := false
	for _, d := range diagonals {
		if !b.canMove(piece, d) {
			continue
		}
		over := square(row+d[0], col+d[1])
		land := square(row+2*d[0], col+2*d[1])
		if over < 0 || land < 0 || captured&(1<<over) != 0 {
			continue
		}
		if cells[over].Owner() != b.player.Opponent() || cells[land] != Empty {
			continue
		}
		extended = true
		mask := captured | 1<<over
		if crowned := b.crown(piece, land); crowned != piece {
			// Crowning ends the move.
			*out = append(*out, b.finish(cells, from, land, crowned, mask))
			continue
		}
		b.jump(cells, from, land, piece, mask, out)
	}
	if !extended && captured != 0 {
		*out = append(*out, b.finish(cells, from, at, piece, captured))
	}
}

func (b Board) crown(piece Cell, to int) Cell {
	if piece.IsKing() {
		return piece
	}
	if row, _ := coords(to); row == promotionRow(b.player) {
		return piece | King
	}
	return piece
}

func (b Board) finish(cells *[NumSquares]Cell, from, to int, piece Cell, captured uint32) Position {
	next := Board{
		cells:  *cells,
		player: b.player.Opponent(),
		from:   int8(from),
		to:     int8(to),
	}
	for sq := 0; sq < NumSquares; sq++ {
		if captured&(1<<sq) != 0 {
			next.cells[sq] = Empty
			next.jumps++
		}
	}
	next.cells[to] = piece
	if captured == 0 {
		next.quiet = b.quiet + 1
	}
	return next
}

func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < rows; col++ {
			sq := square(row, col)
			if sq < 0 {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteByte(cellChar(b.cells[sq]))
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "%s to move", b.player)
	return sb.String()
}

func cellChar(c Cell) byte {
	switch c {
	case RedMan:
		return 'r'
	case WhiteMan:
		return 'w'
	case RedKing:
		return 'R'
	case WhiteKing:
		return 'W'
	default:
		return '.'
	}
}

func coords(sq int) (row, col int) {
	row = sq / 4
	col = 2*(sq%4) + (row+1)%2
	return row, col
}

// square returns the index of the dark square at (row, col), or -1 when off the board.
func square(row, col int) int {
	if row < 0 || row >= rows || col < 0 || col >= rows || (row+col)%2 == 0 {
		return -1
	}
	return row*4 + col/2
}

func forward(p Player) int {
	if p == Red {
		return 1
	}
	return -1
}

func promotionRow(p Player) int {
	if p == Red {
		return rows - 1
	}
	return 0
}
