package annotation

import (
	"encoding/json"
	"fmt"
)

// Text and Marker do not carry a variant field of their own, so marshaling
// injects the discriminator the decoder keys on. Path and Shape serialize
// their Tool field as "type" directly.

// MarshalJSON implements json.Marshaler.
func (t *Text) MarshalJSON() ([]byte, error) {
	type wire Text
	return json.Marshal(struct {
		Type Kind `json:"type"`
		*wire
	}{KindText, (*wire)(t)})
}

// MarshalJSON implements json.Marshaler.
func (m *Marker) MarshalJSON() ([]byte, error) {
	type wire Marker
	return json.Marshal(struct {
		Type Kind `json:"type"`
		*wire
	}{KindMarker, (*wire)(m)})
}

// UnmarshalJSON decodes the annotation list by peeking each element's "type"
// discriminator and decoding into the matching concrete variant.
func (d *Data) UnmarshalJSON(b []byte) error {
	var env struct {
		Annotations []json.RawMessage `json:"annotations"`
		Width       float64           `json:"width"`
		Height      float64           `json:"height"`
	}
	if err := json.Unmarshal(b, &env); err != nil {
		return fmt.Errorf("annotation: decoding payload: %w", err)
	}

	d.Width = env.Width
	d.Height = env.Height
	d.Annotations = make([]Annotation, 0, len(env.Annotations))

	for i, raw := range env.Annotations {
		var head struct {
			Type Kind `json:"type"`
		}
		if err := json.Unmarshal(raw, &head); err != nil {
			return fmt.Errorf("annotation: decoding element %d: %w", i, err)
		}

		var (
			ann Annotation
			err error
		)
		switch head.Type {
		case KindPen, KindHighlighter:
			var p Path
			err = json.Unmarshal(raw, &p)
			ann = &p
		case KindText:
			var t Text
			err = json.Unmarshal(raw, &t)
			ann = &t
		case KindArrow, KindLine, KindCircle, KindRectangle:
			var s Shape
			err = json.Unmarshal(raw, &s)
			ann = &s
		case KindMarker:
			var m Marker
			err = json.Unmarshal(raw, &m)
			ann = &m
		default:
			return fmt.Errorf("annotation: element %d has unknown type %q", i, head.Type)
		}
		if err != nil {
			return fmt.Errorf("annotation: decoding %s element %d: %w", head.Type, i, err)
		}
		d.Annotations = append(d.Annotations, ann)
	}
	return nil
}
