package cycle

import (
	"math"
	"sync/atomic"

	"pulsetimer/internal/core/model"
)

// Board holds one progress value per period option. Only the cycle running
// for an option writes its value; everything else reads.
type Board struct {
	cells map[model.PeriodOption]*progressCell
}

// NewBoard creates a board with every option at 0.
func NewBoard() *Board {
	board := &Board{cells: make(map[model.PeriodOption]*progressCell)}
	for _, option := range model.Options() {
		board.cells[option] = &progressCell{}
	}
	return board
}

// Progress returns the current progress of option in [0,1]. Safe from any
// goroutine.
func (board *Board) Progress(option model.PeriodOption) float64 {
	cell, ok := board.cells[option]
	if !ok {
		return 0
	}
	return cell.load()
}

func (board *Board) cell(option model.PeriodOption) *progressCell {
	return board.cells[option]
}

type progressCell struct {
	bits atomic.Uint64
}

func (cell *progressCell) load() float64 {
	return math.Float64frombits(cell.bits.Load())
}

func (cell *progressCell) store(value float64) {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	cell.bits.Store(math.Float64bits(value))
}
