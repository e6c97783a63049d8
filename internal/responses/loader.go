package responses

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dshills/nyota/internal/schema"
)

// File holds a loaded responses file with derived metadata.
type File struct {
	Path string
	Hash string // "sha256:<hex>"
	Raw  schema.RawResponses
}

// Load reads a JSON object of "<global item>": <rating> pairs from disk and
// coerces its keys to integers. Ratings must be JSON integers; their range is
// not checked here (see validate.Responses).
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading responses file: %w", err)
	}

	raw, err := Decode(data)
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(data)
	return &File{
		Path: path,
		Hash: fmt.Sprintf("sha256:%x", sum),
		Raw:  raw,
	}, nil
}

// Decode parses the JSON form of a responses file.
func Decode(data []byte) (schema.RawResponses, error) {
	var obj map[string]json.Number
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("JSON parse failed: %w", err)
	}
	if obj == nil {
		return nil, fmt.Errorf("responses must be a JSON object, got null")
	}

	raw := make(schema.RawResponses, len(obj))
	for k, v := range obj {
		item, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			return nil, fmt.Errorf("item key %q is not an integer", k)
		}
		rating, err := strconv.Atoi(v.String())
		if err != nil {
			return nil, fmt.Errorf("item %d: rating %s is not an integer", item, v)
		}
		if _, dup := raw[item]; dup {
			return nil, fmt.Errorf("item %d given more than once", item)
		}
		raw[item] = rating
	}
	return raw, nil
}
