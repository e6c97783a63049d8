package chart

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/dshills/nyota/internal/axes"
	"github.com/dshills/nyota/internal/schema"
)

// ErrAxisCount is returned when the result does not hold exactly axes.AxisCount scores.
var ErrAxisCount = errors.New("radar chart requires exactly 8 axes")

// Format selects the output encoding.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// DefaultTitle is drawn above the chart when Options.Title is empty.
const DefaultTitle = "NYOTA Personality – Profil à 8 dimensions"

// GridLevels are the radial levels that get a gridline and a tick label.
var GridLevels = []float64{20, 40, 60, 80, 100}

var hexColor = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// Options controls chart layout and styling.
type Options struct {
	Width  int
	Height int
	Title  string
	Color  string // profile color, "#RRGGBB"
	Format Format
}

// DefaultOptions mirrors a 10x10 inch figure at 100 dpi.
func DefaultOptions() Options {
	return Options{
		Width:  1000,
		Height: 1000,
		Title:  DefaultTitle,
		Color:  "#2E86AB",
		Format: PNG,
	}
}

// Validate reports the first invalid option.
func (o Options) Validate() error {
	if o.Width < 200 || o.Height < 200 {
		return fmt.Errorf("chart size %dx%d is too small (minimum 200x200)", o.Width, o.Height)
	}
	if !hexColor.MatchString(o.Color) {
		return fmt.Errorf("chart color %q is not a #RRGGBB hex color", o.Color)
	}
	switch o.Format {
	case PNG, SVG:
	default:
		return fmt.Errorf("unknown chart format %q: supported formats are png, svg", o.Format)
	}
	return nil
}

// FormatFromPath infers the chart format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".svg":
		return SVG, nil
	default:
		return "", fmt.Errorf("cannot infer chart format from %q: use a .png or .svg extension", path)
	}
}

// Save renders the chart and writes it to path. Nothing is written when the
// result or the options are rejected.
func Save(path string, result schema.Result, opts Options) error {
	var buf bytes.Buffer
	if err := Render(&buf, result, opts); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing chart: %w", err)
	}
	return nil
}

// Render draws result as a radar chart and writes the encoded image to w.
// The first axis points up and axes follow clockwise in result order.
func Render(w io.Writer, result schema.Result, opts Options) error {
	if len(result) != axes.AxisCount {
		return fmt.Errorf("%w, got %d", ErrAxisCount, len(result))
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	provider := gochart.PNG
	if opts.Format == SVG {
		provider = gochart.SVG
	}
	r, err := provider(opts.Width, opts.Height)
	if err != nil {
		return fmt.Errorf("creating %s renderer: %w", opts.Format, err)
	}
	font, err := gochart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("loading chart font: %w", err)
	}
	r.SetFont(font)

	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}
	l := newLayout(opts.Width, opts.Height)
	profile := drawing.ColorFromHex(strings.TrimPrefix(opts.Color, "#"))

	drawBackground(r, opts.Width, opts.Height)
	drawTitle(r, l, title)
	drawGrid(r, l, len(result))
	drawLabels(r, l, result.Names())
	drawProfile(r, l, result.Values(), profile)

	if err := r.Save(w); err != nil {
		return fmt.Errorf("encoding %s chart: %w", opts.Format, err)
	}
	return nil
}

var (
	colorWhite = drawing.ColorFromHex("FFFFFF")
	colorText  = drawing.ColorFromHex("222222")
	colorGrid  = drawing.ColorFromHex("B0B0B0")
	colorTick  = drawing.ColorFromHex("808080")
)

func drawBackground(r gochart.Renderer, width, height int) {
	r.SetFillColor(colorWhite)
	r.SetStrokeColor(colorWhite)
	r.SetStrokeWidth(0)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.Fill()
}

func drawTitle(r gochart.Renderer, l layout, title string) {
	r.SetFontColor(colorText)
	r.SetFontSize(l.titleSize)
	box := r.MeasureText(title)
	r.Text(title, l.cx-box.Width()/2, l.titleY)
}

// drawGrid draws the dashed circular gridlines, their tick labels and the spokes.
func drawGrid(r gochart.Renderer, l layout, n int) {
	r.SetStrokeColor(colorGrid)
	r.SetStrokeWidth(1)
	r.SetStrokeDashArray([]float64{5, 5})
	for _, level := range GridLevels {
		ring(r, float64(l.cx), float64(l.cy), l.radius*level/100, 72)
		r.Stroke()
	}
	for _, angle := range spokeAngles(n) {
		x, y := polar(float64(l.cx), float64(l.cy), l.radius, angle)
		r.MoveTo(l.cx, l.cy)
		r.LineTo(round(x), round(y))
		r.Stroke()
	}
	r.SetStrokeDashArray(nil)

	r.SetFontColor(colorTick)
	r.SetFontSize(l.tickSize)
	for _, level := range GridLevels {
		label := strconv.Itoa(int(level))
		y := float64(l.cy) - l.radius*level/100
		r.Text(label, l.cx+4, round(y)-3)
	}
}

// drawLabels places each axis name just outside its spoke, aligned away from the center.
func drawLabels(r gochart.Renderer, l layout, names []string) {
	r.SetFontColor(colorText)
	r.SetFontSize(l.labelSize)
	for i, angle := range spokeAngles(len(names)) {
		box := r.MeasureText(names[i])
		x, y := polar(float64(l.cx), float64(l.cy), l.radius+l.labelGap, angle)

		cos, sin := math.Cos(angle), math.Sin(angle)
		switch {
		case cos > 0.1:
		case cos < -0.1:
			x -= float64(box.Width())
		default:
			x -= float64(box.Width()) / 2
		}
		switch {
		case sin > 0.1:
			y += float64(box.Height())
		case sin < -0.1:
		default:
			y += float64(box.Height()) / 2
		}
		r.Text(names[i], round(x), round(y))
	}
}

// drawProfile fills and outlines the closed score polygon and marks each vertex.
func drawProfile(r gochart.Renderer, l layout, values []float64, c drawing.Color) {
	pts := profilePoints(float64(l.cx), float64(l.cy), l.radius, values)

	r.SetFillColor(c.WithAlpha(64))
	r.SetStrokeColor(c)
	r.SetStrokeWidth(2)
	r.MoveTo(round(pts[0].x), round(pts[0].y))
	for _, p := range pts[1:] {
		r.LineTo(round(p.x), round(p.y))
	}
	r.FillStroke()

	r.SetFillColor(c)
	for _, p := range pts[:len(pts)-1] {
		ring(r, p.x, p.y, 4, 12)
		r.FillStroke()
	}
}

// ring traces a closed polygon approximating a circle.
func ring(r gochart.Renderer, cx, cy, radius float64, segments int) {
	for i := 0; i <= segments; i++ {
		x, y := polar(cx, cy, radius, 2*math.Pi*float64(i)/float64(segments))
		if i == 0 {
			r.MoveTo(round(x), round(y))
			continue
		}
		r.LineTo(round(x), round(y))
	}
	r.Close()
}
