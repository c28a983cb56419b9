package maze

import (
	"math/rand"
	"time"
)

// frame is one pending cell of the backtracker together with the
// directions it still has to try.
type frame struct {
	pos  CellPosition
	dirs [4]Direction
	next int
}

// NewRand returns a seeded random source. A zero seed picks a time based one.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Generate carves a perfect maze into g with a randomized recursive backtracker
// starting at (startRow, startCol).
//
// The recursion runs on an explicit stack so the depth is bounded by the heap,
// not the goroutine stack; cells are visited in the same order as the recursive form.
func Generate(g *Grid, startRow, startCol int, rng *rand.Rand) error {
	start, err := g.CellAt(startRow, startCol)
	if err != nil {
		return err
	}

	start.Visited = true
	stack := []*frame{newFrame(CellPosition{Row: startRow, Col: startCol}, rng)}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next == len(top.dirs) {
			pop(&stack)
			continue
		}

		d := top.dirs[top.next]
		top.next++

		nbr := top.pos.Step(d)
		cell, err := g.CellAt(nbr.Row, nbr.Col)
		if err != nil || cell.Visited {
			continue
		}

		if err := g.CarvePassage(top.pos.Row, top.pos.Col, d); err != nil {
			return err
		}
		cell.Visited = true
		stack = append(stack, newFrame(nbr, rng))
	}

	return nil
}

func newFrame(pos CellPosition, rng *rand.Rand) *frame {
	f := &frame{pos: pos, dirs: Directions}
	shuffle(f.dirs[:], rng)
	return f
}

// shuffle is a Knuth (Fisher-Yates) shuffle: walk i down from len-1 to 1 and
// swap element i with a uniformly chosen element in [0, i].
func shuffle(dirs []Direction, rng *rand.Rand) {
	for i := len(dirs) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
}

// pop removes the last element of a stack of frames.
func pop(s *[]*frame) *frame {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
