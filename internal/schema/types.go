package schema

import "fmt"

// Block names one of the four partitions of the 72-item questionnaire.
type Block string

const (
	Bloc1 Block = "bloc1"
	Bloc2 Block = "bloc2"
	Bloc3 Block = "bloc3"
	Bloc4 Block = "bloc4"
)

// Blocks lists every block in canonical order. Scoring walks blocks in this
// order, so it also fixes the order in which an axis collects its values.
var Blocks = []Block{Bloc1, Bloc2, Bloc3, Bloc4}

// ItemCount is the number of items in the full questionnaire.
const ItemCount = 72

// Offset returns the number of global items that precede the block.
// Global item g of the block maps to local item g - Offset().
func (b Block) Offset() int {
	switch b {
	case Bloc1:
		return 0
	case Bloc2:
		return 30
	case Bloc3:
		return 46
	case Bloc4:
		return 58
	}
	return -1
}

// Size returns the number of items in the block, or 0 for an unknown block.
func (b Block) Size() int {
	switch b {
	case Bloc1:
		return 30
	case Bloc2:
		return 16
	case Bloc3:
		return 12
	case Bloc4:
		return 14
	}
	return 0
}

// Contains reports whether local is a valid 1-based item number of the block.
func (b Block) Contains(local int) bool {
	return local >= 1 && local <= b.Size()
}

// IsValidBlock reports whether b is one of the four defined blocks.
func IsValidBlock(b Block) bool {
	return b.Size() > 0
}

// BlockOf maps a global item number to its block and local number.
// ok is false when global falls outside 1..ItemCount.
func BlockOf(global int) (b Block, local int, ok bool) {
	for _, blk := range Blocks {
		if l := global - blk.Offset(); blk.Contains(l) {
			return blk, l, true
		}
	}
	return "", 0, false
}

// ItemRef identifies one local item within a block.
type ItemRef struct {
	Block Block `json:"block" yaml:"block"`
	Item  int   `json:"item" yaml:"item"`
}

func (r ItemRef) String() string {
	return fmt.Sprintf("%s Q%d", r.Block, r.Item)
}

// RawResponses maps a global item number (1..72) to its rating (1..5).
// Keys need not be contiguous or complete.
type RawResponses map[int]int

// ParsedResponses holds ratings per block, keyed by local item number.
type ParsedResponses map[Block]map[int]int

// Lookup returns the rating recorded for ref, if any.
func (p ParsedResponses) Lookup(ref ItemRef) (int, bool) {
	items, ok := p[ref.Block]
	if !ok {
		return 0, false
	}
	v, ok := items[ref.Item]
	return v, ok
}
