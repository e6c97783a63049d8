package scoring

import (
	"fmt"
	"math"

	"github.com/dshills/nyota/internal/axes"
	"github.com/dshills/nyota/internal/responses"
	"github.com/dshills/nyota/internal/schema"
)

// ScaleMax is the top of the rating scale; ratings run 1..ScaleMax.
const ScaleMax = 5

// MissingResponseError reports a configured item that has no response.
type MissingResponseError struct {
	Axis  string
	Block schema.Block
	Item  int
}

func (e *MissingResponseError) Error() string {
	return fmt.Sprintf("[%s] missing response: %s Q%d", e.Axis, e.Block, e.Item)
}

// Invert reverse-scores a rating: 1<->5, 2<->4, 3 stays 3.
func Invert(v int) int {
	return ScaleMax + 1 - v
}

// Normalize maps a mean on the 1..5 scale to 0..100, rounded half-to-even at
// two decimals: 1 -> 0, 3 -> 50, 5 -> 100.
func Normalize(mean float64) float64 {
	return round2((mean - 1) / (ScaleMax - 1) * 100)
}

// ScoreAxis computes one axis's normalized score from parsed responses.
// It fails on the first configured item without a response. An axis with no
// configured items scores 0.
func ScoreAxis(axis axes.Axis, parsed schema.ParsedResponses) (float64, error) {
	refs := axis.Refs()
	if len(refs) == 0 {
		return 0, nil
	}

	sum := 0
	for _, ref := range refs {
		v, ok := parsed.Lookup(ref)
		if !ok {
			return 0, &MissingResponseError{Axis: axis.Name, Block: ref.Block, Item: ref.Item}
		}
		if axis.Inverted(ref) {
			v = Invert(v)
		}
		sum += v
	}

	return Normalize(float64(sum) / float64(len(refs))), nil
}

// ComputeAll scores every axis of cfg, in canonical order. raw is parsed once.
// The first MissingResponseError aborts the whole computation and no partial
// result is returned.
func ComputeAll(cfg *axes.Config, raw schema.RawResponses) (schema.Result, error) {
	parsed := responses.Parse(raw)

	list := cfg.Axes()
	result := make(schema.Result, 0, len(list))
	for _, axis := range list {
		score, err := ScoreAxis(axis, parsed)
		if err != nil {
			return nil, err
		}
		result = append(result, schema.AxisScore{Axis: axis.Name, Score: score})
	}
	return result, nil
}

// Summarize derives the mean score and the strongest and weakest axes.
// Ties go to the axis that comes first in canonical order.
func Summarize(result schema.Result) schema.Summary {
	if len(result) == 0 {
		return schema.Summary{}
	}
	var (
		total  float64
		strong = result[0]
		weak   = result[0]
	)
	for _, s := range result {
		total += s.Score
		if s.Score > strong.Score {
			strong = s
		}
		if s.Score < weak.Score {
			weak = s
		}
	}
	return schema.Summary{
		Mean:      round2(total / float64(len(result))),
		Strongest: strong.Axis,
		Weakest:   weak.Axis,
	}
}

// round2 rounds x half-to-even at two decimals.
func round2(x float64) float64 {
	return math.RoundToEven(x*100) / 100
}
