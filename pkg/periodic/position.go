package periodic

import (
	"math"
	"strconv"
	"strings"
)

// Block is the orbital block an element belongs to.
type Block string

// Orbital blocks. BlockDS marks groups 11 and 12, which the table keeps
// separate from the d-block proper.
const (
	BlockNone Block = ""
	BlockS    Block = "s"
	BlockP    Block = "p"
	BlockD    Block = "d"
	BlockDS   Block = "ds"
	BlockF    Block = "f"
	BlockG    Block = "g"
	BlockI    Block = "i"
	BlockJ    Block = "j"
)

// String returns the block letter, or "-" when the block is unknown.
func (b Block) String() string {
	if b == BlockNone {
		return "-"
	}
	return string(b)
}

// Position locates an element in the periodic table.
// Invalid atomic numbers yield Period -1, IndexInPeriod -1, Group -1 and BlockNone.
type Position struct {
	Period        int   // One-based row index
	IndexInPeriod int   // Zero-based index inside the row
	Group         int   // IUPAC group 1..18, or -1 inside the f/g/i/j interior
	Block         Block // Orbital block
}

// Valid reports whether the position refers to a real row.
func (p Position) Valid() bool { return p.Period > 0 }

// periodEnds holds the last atomic number of periods 1..19.
var periodEnds = [...]int{2, 10, 18, 36, 54, 86, 118, 168, 218, 290, 362, 460, 558, 686, 814, 976, 1138, 1338, 1538}

// PeriodLength returns the number of elements in period under the extended
// periodic table: 2, 8, 8, 18, 18, 32, 32, 50, 50, ...
// Periods after the first come in pairs of equal length. Returns -1 for
// period < 1.
func PeriodLength(period int) int {
	if period < 1 {
		return -1
	}
	count, diff := 2, 2
	for i := 1; i < period; i += 2 {
		diff += 4
		count += diff
	}
	return count
}

// PeriodOf returns the period and the zero-based index inside that period for
// an atomic number. Numbers below 1 yield (-1, -1).
//
// Periods 1..19 are read from a boundary table; past that the table is
// extended one pair of equal-length periods at a time, without bound.
func PeriodOf(number int) (period, index int) {
	if number < 1 {
		return -1, -1
	}
	if number <= 2 {
		return 1, number - 1
	}
	for i := 1; i < len(periodEnds); i++ {
		if number > periodEnds[i] {
			continue
		}
		return i + 1, number - periodEnds[i-1] - 1
	}

	diff, count, last := 42, 242, 1780
	for period = 20; last > 0; period += 2 {
		if number <= last {
			return period, number - last + count - 1
		}
		last += count
		if number <= last {
			return period + 1, number - last + count - 1
		}
		diff += 4
		count += diff
		last += count
	}
	return -1, -1
}

// columnOf is the raw table column: the group formula with the f/g/i/j
// interior folded onto column 3. Returns -1 for invalid input.
func columnOf(period, index int) int {
	if period < 1 || index < 0 {
		return -1
	}
	if index == 0 {
		return 1
	}
	if period == 1 {
		return 18
	}
	if index == 1 {
		return 2
	}
	if period < 4 {
		return index + 11
	}
	if period < 6 {
		return index + 1
	}
	return max(18-PeriodLength(period)+index+1, 3)
}

// GroupOf returns the IUPAC group (1..18) of the element at index in period,
// or -1 for invalid input and for elements inside the f/g/i/j interior,
// which only exists from period 6 on.
func GroupOf(period, index int) int {
	col := columnOf(period, index)
	if col == 3 && period >= 6 && 18-PeriodLength(period)+index+1 < 3 {
		return -1
	}
	return col
}

// BlockOf returns the orbital block of the element with the given atomic
// number at index in period.
//
// Column 3 from period 6 on is the f/g/i/j interior. How far the element sits
// from the end of its row decides how deep into that interior it is, so the
// same rule places lanthanides, actinides and the hypothetical g, i and j rows.
func BlockOf(number, period, index int) Block {
	switch col := columnOf(period, index); {
	case col == 1, col == 2:
		return BlockS
	case col == 3:
		if period < 6 {
			return BlockD
		}
		countdown := PeriodLength(period) - index
		switch {
		case countdown <= 16:
			return BlockNone
		case period < 8 || countdown <= 30:
			return BlockF
		case period < 10 || countdown <= 48:
			return BlockG
		case period < 12 || countdown <= 70:
			return BlockI
		case period < 14 || countdown <= 96:
			return BlockJ
		}
		return BlockNone
	case col >= 4 && col <= 10:
		return BlockD
	case col == 11, col == 12:
		return BlockDS
	case col >= 13 && col <= 17:
		return BlockP
	case col == 18:
		if number == 2 {
			return BlockS
		}
		return BlockP
	}
	return BlockNone
}

// Locate derives the full table position of an atomic number.
func Locate(number int) Position {
	period, index := PeriodOf(number)
	return Position{
		Period:        period,
		IndexInPeriod: index,
		Group:         GroupOf(period, index),
		Block:         BlockOf(number, period, index),
	}
}

// PeriodRange returns the first and last atomic numbers of a period, or
// (-1, -1) when period < 1.
func PeriodRange(period int) (first, last int) {
	if period < 1 {
		return -1, -1
	}
	length, diff := 2, 2
	for p := 1; p <= period; p++ {
		if p > 1 && p%2 == 0 {
			diff += 4
			length += diff
		}
		first = last + 1
		last += length
	}
	return first, last
}

var latinRoots = [...]string{"Nil", "Un", "Bi", "Tri", "Quad", "Pent", "Hex", "Sept", "Oct", "Enn"}

// SynthesizeName builds the systematic IUPAC symbol and name for an atomic
// number from its decimal digits, e.g. 119 gives "Uue" and "Ununennium".
// Negative numbers yield ("?", "?").
func SynthesizeName(number int) (symbol, name string) {
	if number < 0 {
		return "?", "?"
	}
	var sym, nm strings.Builder
	for i, d := range strconv.Itoa(number) {
		root := latinRoots[d-'0']
		if i > 0 {
			root = strings.ToLower(root)
		}
		sym.WriteByte(root[0])
		nm.WriteString(root)
	}
	name = nm.String()
	if strings.HasSuffix(name, "i") {
		return sym.String(), name + "um"
	}
	return sym.String(), name + "ium"
}

// Round rounds half up, the way atomic and mass numbers supplied as floats
// are normalized. NaN rounds to 0; values outside the int range saturate.
func Round(x float64) int {
	if math.IsNaN(x) {
		return 0
	}
	r := math.Floor(x + 0.5)
	if r >= math.MaxInt64 {
		return math.MaxInt
	}
	if r <= math.MinInt64 {
		return math.MinInt
	}
	return int(r)
}
