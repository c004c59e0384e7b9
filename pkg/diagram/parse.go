package diagram

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/mlandau/wavetrace/pkg/errors"
)

// Decode parses a strict JSON source document.
//
// The document must be a JSON object containing at least one of the
// keys "signal", "reg" or "assign"; anything else is rejected with
// INVALID_INPUT before any layout work happens. Numbers are kept in
// their literal form during decoding so tick steps can infer decimal
// precision from the text the author wrote.
func Decode(source []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(source))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "source is not valid JSON")
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "source must be a JSON object")
	}

	doc := &Document{}

	if v, ok := obj["signal"]; ok {
		list, ok := v.([]any)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "'signal' must be an array")
		}
		root, err := parseSignalList(list)
		if err != nil {
			return nil, err
		}
		doc.Signal = root
	}
	if v, ok := obj["reg"]; ok {
		fields, err := parseFields(v)
		if err != nil {
			return nil, err
		}
		doc.Reg = fields
	}
	if _, ok := obj["assign"]; ok {
		doc.HasAssign = true
	}
	if doc.Kind() == KindUnknown {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"source must contain one of 'signal', 'reg' or 'assign'")
	}

	if v, ok := obj["config"]; ok {
		if cfgObj, ok := v.(map[string]any); ok {
			doc.Config = parseConfig(cfgObj)
		}
	}
	if v, ok := obj["head"]; ok {
		doc.Head = parseCaption(v)
	}
	if v, ok := obj["foot"]; ok {
		doc.Foot = parseCaption(v)
	}
	if v, ok := obj["edge"]; ok {
		if list, ok := v.([]any); ok {
			for _, e := range list {
				if s, ok := e.(string); ok {
					doc.Edges = append(doc.Edges, s)
				}
			}
		}
	}

	return doc, nil
}

// parseSignalList builds a group node from a nested signal list. A
// leading string or number names the group; objects become leaf lanes;
// nested arrays recurse.
func parseSignalList(list []any) (*SignalNode, error) {
	node := &SignalNode{}
	if len(list) > 0 {
		if name, ok := scalarText(list[0]); ok {
			node.Name = name
			node.Named = true
		}
	}
	for _, item := range list {
		switch v := item.(type) {
		case []any:
			child, err := parseSignalList(v)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)
		case map[string]any:
			lane, err := parseLane(v)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, &SignalNode{Lane: lane})
		}
	}
	return node, nil
}

func parseLane(obj map[string]any) (*Lane, error) {
	lane := &Lane{Period: 1}

	if v, ok := obj["name"]; ok {
		lane.Name, _ = scalarText(v)
	}
	if v, ok := obj["wave"]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "lane %q: 'wave' must be a string", lane.Name)
		}
		lane.Wave = s
	}
	if v, ok := obj["data"]; ok {
		switch d := v.(type) {
		case string:
			lane.Data = strings.Fields(d)
		case []any:
			for _, e := range d {
				if s, ok := scalarText(e); ok {
					lane.Data = append(lane.Data, s)
				}
			}
		}
	}
	if v, ok := obj["period"]; ok {
		if f, ok := numValue(v); ok && f > 0 {
			lane.Period = f
		}
	}
	if v, ok := obj["phase"]; ok {
		if f, ok := numValue(v); ok {
			lane.Phase = f
		}
	}
	if v, ok := obj["node"].(string); ok {
		lane.Node = v
	}
	if v, ok := obj["label"].(string); ok {
		lane.Label = v
	}
	return lane, nil
}

func parseFields(v any) ([]Field, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "'reg' must be an array")
	}
	fields := make([]Field, 0, len(list))
	for i, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "reg[%d] must be an object", i)
		}
		f := Field{}
		if v, ok := obj["name"]; ok {
			f.Name, _ = scalarText(v)
		}
		bits, ok := numValue(obj["bits"])
		if !ok || bits <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "reg[%d]: missing or invalid 'bits'", i)
		}
		f.Bits = int(bits)
		if v, ok := obj["attr"]; ok {
			f.Attrs = parseAttrs(v)
		}
		if v, ok := numValue(obj["type"]); ok {
			f.Type = int(v)
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func parseAttrs(v any) []Attr {
	items := []any{v}
	if list, ok := v.([]any); ok {
		items = list
	}
	attrs := make([]Attr, 0, len(items))
	for _, item := range items {
		switch a := item.(type) {
		case string:
			attrs = append(attrs, Attr{Text: a})
		case json.Number:
			if n, err := a.Int64(); err == nil {
				attrs = append(attrs, Attr{Value: n, IsInt: true})
			} else {
				attrs = append(attrs, Attr{Text: a.String()})
			}
		}
	}
	return attrs
}

func parseConfig(obj map[string]any) Config {
	cfg := Config{}
	if v, ok := obj["skin"].(string); ok {
		cfg.Skin = v
	}
	if v, ok := numValue(obj["hscale"]); ok {
		cfg.HScale = v
	}
	if list, ok := obj["hbounds"].([]any); ok && len(list) == 2 {
		lo, okLo := numValue(list[0])
		hi, okHi := numValue(list[1])
		if okLo && okHi {
			cfg.HBounds = &[2]float64{lo, hi}
		}
	}
	if v, ok := numValue(obj["vspace"]); ok {
		cfg.VSpace = v
	}
	if v, ok := numValue(obj["hspace"]); ok {
		cfg.HSpace = v
	}
	if v, ok := numValue(obj["lanes"]); ok {
		cfg.Lanes = int(v)
	}
	if v, ok := numValue(obj["bits"]); ok {
		cfg.Bits = int(v)
	}
	if v, ok := obj["hflip"].(bool); ok {
		cfg.HFlip = v
	}
	if v, ok := obj["vflip"].(bool); ok {
		cfg.VFlip = v
	}
	if v, ok := numValue(obj["fontsize"]); ok {
		cfg.FontSize = v
	}
	if v, ok := obj["fontfamily"].(string); ok {
		cfg.FontFamily = v
	}
	if v, ok := obj["fontweight"].(string); ok {
		cfg.FontWeight = v
	}
	return cfg
}

func parseCaption(v any) *Caption {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	c := &Caption{}
	if s, ok := obj["text"].(string); ok {
		c.Text = s
	}
	if t, ok := obj["tick"]; ok {
		c.Tick = parseTicks(t)
	}
	if t, ok := obj["tock"]; ok {
		c.Tock = parseTicks(t)
	}
	return c
}

// parseTicks maps the permissive tick/tock forms: a number starts a
// sequential count, a string or long list is used verbatim, and a
// [start, step] number pair steps with the decimal precision of the
// step's textual form.
func parseTicks(v any) *Ticks {
	switch t := v.(type) {
	case json.Number:
		f, _ := t.Float64()
		return &Ticks{Seq: true, Start: f}
	case string:
		return &Ticks{Values: strings.Fields(t)}
	case bool:
		// true coerces to the number 1, so the sequence starts there.
		if t {
			return &Ticks{Seq: true, Start: 1}
		}
		return nil
	case []any:
		switch len(t) {
		case 0:
			return nil
		case 1:
			if f, ok := numValue(t[0]); ok {
				return &Ticks{Seq: true, Start: f}
			}
			if s, ok := t[0].(string); ok {
				return &Ticks{Values: []string{s}}
			}
			return nil
		case 2:
			start, okStart := numValue(t[0])
			if step, okStep := t[1].(json.Number); okStart && okStep {
				f, _ := step.Float64()
				return &Ticks{Pair: true, Start: start, Step: f, StepText: step.String()}
			}
			fallthrough
		default:
			ticks := &Ticks{}
			for _, e := range t {
				if s, ok := scalarText(e); ok {
					ticks.Values = append(ticks.Values, s)
				}
			}
			return ticks
		}
	}
	return nil
}

// scalarText returns the textual form of a string or number value.
func scalarText(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case json.Number:
		return s.String(), true
	}
	return "", false
}

func numValue(v any) (float64, bool) {
	if n, ok := v.(json.Number); ok {
		if f, err := n.Float64(); err == nil {
			return f, true
		}
	}
	return 0, false
}
