package axes

import "github.com/dshills/nyota/internal/schema"

// DefaultName is the name of the built-in instrument.
const DefaultName = "nyota"

// Default returns the built-in NYOTA instrument. Each call builds a fresh Config.
func Default() *Config {
	cfg, err := New(DefaultName, nyotaAxes())
	if err != nil {
		panic("axes: built-in instrument is invalid: " + err.Error())
	}
	return cfg
}

func nyotaAxes() []Axis {
	return []Axis{
		{
			Name: "Ouverture & Curiosité",
			Items: map[schema.Block][]int{
				schema.Bloc1: span(1, 6),
				schema.Bloc2: {14},
				schema.Bloc3: {3, 6},
			},
		},
		{
			Name: "Discipline & Fiabilité",
			Items: map[schema.Block][]int{
				schema.Bloc1: span(7, 12),
				schema.Bloc3: {7, 11, 12},
			},
		},
		{
			Name: "Influence & Présence",
			Items: map[schema.Block][]int{
				schema.Bloc1: span(13, 18),
				schema.Bloc2: {15},
			},
		},
		{
			Name: "Coopération",
			Items: map[schema.Block][]int{
				schema.Bloc1: span(19, 24),
				schema.Bloc2: {16},
			},
		},
		{
			// bloc2 Q1-8 are risk items, reverse-scored.
			Name: "Résilience & Stress",
			Items: map[schema.Block][]int{
				schema.Bloc1: span(25, 30),
				schema.Bloc2: span(1, 8),
			},
			Invert: refs(schema.Bloc2, span(1, 8)),
		},
		{
			Name: "Drive & Motivation",
			Items: map[schema.Block][]int{
				schema.Bloc2: {9, 10, 11, 12, 13, 15, 16},
			},
		},
		{
			Name: "Style d'action",
			Items: map[schema.Block][]int{
				schema.Bloc3: span(1, 12),
			},
		},
		{
			Name: "Alignement stratégique",
			Items: map[schema.Block][]int{
				schema.Bloc4: span(1, 14),
			},
		},
	}
}

// span returns lo..hi inclusive.
func span(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}

func refs(b schema.Block, items []int) []schema.ItemRef {
	out := make([]schema.ItemRef, len(items))
	for i, item := range items {
		out[i] = schema.ItemRef{Block: b, Item: item}
	}
	return out
}
