package validate

import (
	"fmt"
	"sort"

	"github.com/dshills/nyota/internal/schema"
)

// MinRating and MaxRating bound a well-formed rating.
const (
	MinRating = 1
	MaxRating = 5
)

// Responses checks that every item number falls within 1..72 and every rating
// within 1..5. Scoring does not need this; it backs --strict. Items are checked
// in ascending order so the first reported problem is stable.
func Responses(raw schema.RawResponses) error {
	for _, item := range sortedItems(raw) {
		prefix := fmt.Sprintf("item[%d]", item)
		if item < 1 || item > schema.ItemCount {
			return fmt.Errorf("%s: item number must be between 1 and %d", prefix, schema.ItemCount)
		}
		if err := validateRating(raw[item], prefix); err != nil {
			return err
		}
	}
	return nil
}

// Complete reports the global item numbers in 1..72 that have no response.
func Complete(raw schema.RawResponses) []int {
	var missing []int
	for i := 1; i <= schema.ItemCount; i++ {
		if _, ok := raw[i]; !ok {
			missing = append(missing, i)
		}
	}
	return missing
}

func validateRating(v int, prefix string) error {
	if v < MinRating || v > MaxRating {
		return fmt.Errorf("%s: rating %d must be between %d and %d", prefix, v, MinRating, MaxRating)
	}
	return nil
}

func sortedItems(raw schema.RawResponses) []int {
	items := make([]int, 0, len(raw))
	for k := range raw {
		items = append(items, k)
	}
	sort.Ints(items)
	return items
}
