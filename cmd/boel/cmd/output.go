package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/boel-dev/boel/internal/config"
	"github.com/boel-dev/boel/rawarray"
	"gopkg.in/yaml.v3"
)

// arrayDocument is the structured form printed by --format json|yaml.
type arrayDocument struct {
	Shape  []int  `json:"shape" yaml:"shape"`
	Type   string `json:"type" yaml:"type"`
	Endian string `json:"endian" yaml:"endian"`
	Chunk  int    `json:"chunk,omitempty" yaml:"chunk,omitempty"`
	Window int    `json:"window,omitempty" yaml:"window,omitempty"`
	Stride int    `json:"stride,omitempty" yaml:"stride,omitempty"`
	Values any    `json:"values" yaml:"values"`
}

// split returns the chunks or windows requested by rc, or nil when the
// array is printed whole.
func split(arr *rawarray.ShapedArray, rc *config.ReadConfig) (label string, pieces []rawarray.FlatValues, err error) {
	switch {
	case rc.Chunk > 0:
		pieces, err = arr.Chunks(rc.Chunk)
		return "chunk", pieces, err
	case rc.Window > 0:
		pieces, err = arr.Windows(rc.Window, rc.Stride)
		return "window", pieces, err
	default:
		return "", nil, nil
	}
}

func writeArray(w io.Writer, arr *rawarray.ShapedArray, rc *config.ReadConfig) error {
	label, pieces, err := split(arr, rc)
	if err != nil {
		return err
	}

	if rc.Format == config.FormatText {
		if label == "" {
			_, err := fmt.Fprintln(w, arr.String())
			return err
		}
		for i, p := range pieces {
			row, err := rawarray.New(p, rawarray.Shape{p.Len()})
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%s %d: %v\n", label, i, row); err != nil {
				return err
			}
		}
		return nil
	}

	doc := arrayDocument{
		Shape:  arr.Shape(),
		Type:   arr.Width().String(),
		Endian: rc.Endianness.String(),
	}
	switch {
	case label != "":
		doc.Chunk = rc.Chunk
		if rc.Window > 0 {
			doc.Window, doc.Stride = rc.Window, rc.Stride
		}
		values := make([][]float64, len(pieces))
		for i, p := range pieces {
			values[i] = p.Float64s()
		}
		doc.Values = values
	case arr.NDim() == 2:
		rows, err := arr.View2D()
		if err != nil {
			return err
		}
		doc.Values = rows
	default:
		doc.Values = arr.Flat()
	}

	switch rc.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode json (NaN and Inf need --format text or yaml): %w", err)
		}
		return nil
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", rc.Format)
	}
}
