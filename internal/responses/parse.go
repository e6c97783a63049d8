package responses

import "github.com/dshills/nyota/internal/schema"

// Parse splits globally numbered responses into the four blocks, renumbering
// each item relative to its block. Every block is present in the result, even
// when empty. Items outside 1..72 are dropped; ratings are passed through
// unchanged.
func Parse(raw schema.RawResponses) schema.ParsedResponses {
	parsed := make(schema.ParsedResponses, len(schema.Blocks))
	for _, b := range schema.Blocks {
		parsed[b] = make(map[int]int, b.Size())
	}
	for global, rating := range raw {
		b, local, ok := schema.BlockOf(global)
		if !ok {
			continue
		}
		parsed[b][local] = rating
	}
	return parsed
}
