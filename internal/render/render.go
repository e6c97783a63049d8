package render

import (
	"fmt"

	"github.com/dshills/nyota/internal/schema"
)

// Renderer formats a Report into bytes for output.
type Renderer interface {
	Render(report *schema.Report) ([]byte, error)
}

// NewRenderer returns a Renderer for the given format string.
// Supported formats: "text" (default), "json", "md". color only affects the
// text format.
func NewRenderer(format string, color bool) (Renderer, error) {
	switch format {
	case "text", "":
		return &textRenderer{color: color}, nil
	case "json":
		return &jsonRenderer{}, nil
	case "md":
		return &markdownRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q: supported formats are text, json, md", format)
	}
}

// Bar returns the proportional bar for a 0..100 score: one block per 5 points.
func Bar(score float64) string {
	return repeat("█", int(score/5))
}
