package deckmorph

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// KeyframeSet is the file form of a full engine configuration: the three
// keyframes plus optional per-transition duration overrides.
type KeyframeSet struct {
	Keyframes [KeyframeCount]KeyframeConfig
	// Durations maps ordered "from-to" index pairs to milliseconds.
	Durations map[string]float64
}

// Apply installs the set's durations into the store and replaces its
// keyframes. Numeric clamping happens inside the store.
func (ks *KeyframeSet) Apply(s *Store) {
	for i := range ks.Keyframes {
		cfg := ks.Keyframes[i]
		s.Edit(i, func(k *KeyframeConfig) { *k = cfg })
	}
	for key, ms := range ks.Durations {
		from, to, err := parseDurationKey(key)
		if err != nil {
			continue
		}
		s.SetDuration(from, to, ms)
	}
}

// File-level YAML document types. Validation happens here, at the
// configuration edge, so the engine core never sees a malformed config.

type keyframeFile struct {
	Keyframes []keyframeDoc      `yaml:"keyframes"`
	Durations map[string]float64 `yaml:"durations,omitempty"`
}

type keyframeDoc struct {
	Layout        string     `yaml:"layout"`
	Cards         int        `yaml:"cards"`
	CardWidth     float64    `yaml:"card_width"`
	CardHeight    float64    `yaml:"card_height"`
	CardThickness float64    `yaml:"card_thickness"`
	Spacing       float64    `yaml:"spacing"`
	Stroke        string     `yaml:"stroke,omitempty"`
	Groups        []groupDoc `yaml:"groups,omitempty"`
	GroupSpacing  float64    `yaml:"group_spacing,omitempty"`
	Camera        cameraDoc  `yaml:"camera"`
}

type groupDoc struct {
	Percent float64 `yaml:"percent"`
	Stroke  string  `yaml:"stroke"`
}

type cameraDoc struct {
	Zoom float64 `yaml:"zoom"`
	RotX float64 `yaml:"rot_x,omitempty"`
	RotY float64 `yaml:"rot_y,omitempty"`
	RotZ float64 `yaml:"rot_z,omitempty"`
}

// LoadKeyframes parses a YAML keyframe set. It rejects documents that do
// not carry exactly three keyframes, grouped-stack keyframes without a
// group spec, unknown layout names, and malformed colors; numeric fields
// are clamped later when the set is applied to a store.
func LoadKeyframes(data []byte) (*KeyframeSet, error) {
	var file keyframeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse keyframes: %w", err)
	}
	if len(file.Keyframes) != KeyframeCount {
		return nil, fmt.Errorf("parse keyframes: want %d keyframes, got %d", KeyframeCount, len(file.Keyframes))
	}

	set := &KeyframeSet{Durations: file.Durations}
	for i, doc := range file.Keyframes {
		cfg, err := doc.toConfig()
		if err != nil {
			return nil, fmt.Errorf("keyframe %d: %w", i, err)
		}
		set.Keyframes[i] = cfg
	}
	for key := range file.Durations {
		if _, _, err := parseDurationKey(key); err != nil {
			return nil, fmt.Errorf("durations: %w", err)
		}
	}
	return set, nil
}

// SaveKeyframes encodes a keyframe set back into its YAML file form.
func SaveKeyframes(set *KeyframeSet) ([]byte, error) {
	file := keyframeFile{Durations: set.Durations}
	for i := range set.Keyframes {
		file.Keyframes = append(file.Keyframes, docFromConfig(&set.Keyframes[i]))
	}
	out, err := yaml.Marshal(&file)
	if err != nil {
		return nil, fmt.Errorf("encode keyframes: %w", err)
	}
	return out, nil
}

func (doc keyframeDoc) toConfig() (KeyframeConfig, error) {
	kind, ok := parseLayoutKind(doc.Layout)
	if !ok {
		return KeyframeConfig{}, fmt.Errorf("unknown layout %q", doc.Layout)
	}
	if kind == LayoutGroupedStack && len(doc.Groups) == 0 {
		return KeyframeConfig{}, fmt.Errorf("grouped-stack layout requires groups")
	}

	cfg := KeyframeConfig{
		Kind:          kind,
		CardCount:     doc.Cards,
		CardWidth:     doc.CardWidth,
		CardHeight:    doc.CardHeight,
		CardThickness: doc.CardThickness,
		Spacing:       doc.Spacing,
		GroupSpacing:  doc.GroupSpacing,
		Stroke:        ColorWhite,
		Camera: CameraPose{
			Zoom: doc.Camera.Zoom,
			RotX: doc.Camera.RotX,
			RotY: doc.Camera.RotY,
			RotZ: doc.Camera.RotZ,
		},
	}
	if doc.Stroke != "" {
		c, err := parseHexColor(doc.Stroke)
		if err != nil {
			return KeyframeConfig{}, err
		}
		cfg.Stroke = c
	}
	for _, g := range doc.Groups {
		c, err := parseHexColor(g.Stroke)
		if err != nil {
			return KeyframeConfig{}, err
		}
		cfg.Groups = append(cfg.Groups, GroupSpec{Percent: g.Percent, Stroke: c})
	}
	return cfg, nil
}

func docFromConfig(cfg *KeyframeConfig) keyframeDoc {
	doc := keyframeDoc{
		Layout:        cfg.Kind.String(),
		Cards:         cfg.CardCount,
		CardWidth:     cfg.CardWidth,
		CardHeight:    cfg.CardHeight,
		CardThickness: cfg.CardThickness,
		Spacing:       cfg.Spacing,
		Stroke:        formatHexColor(cfg.Stroke),
		GroupSpacing:  cfg.GroupSpacing,
		Camera: cameraDoc{
			Zoom: cfg.Camera.Zoom,
			RotX: cfg.Camera.RotX,
			RotY: cfg.Camera.RotY,
			RotZ: cfg.Camera.RotZ,
		},
	}
	for _, g := range cfg.Groups {
		doc.Groups = append(doc.Groups, groupDoc{
			Percent: g.Percent,
			Stroke:  formatHexColor(g.Stroke),
		})
	}
	return doc
}

// parseHexColor accepts "#rrggbb" or "#rrggbbaa".
func parseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	c := Color{A: 1}
	if len(hex) == 8 {
		c.A = float64(v&0xff) / 255
		v >>= 8
	}
	c.B = float64(v&0xff) / 255
	c.G = float64(v>>8&0xff) / 255
	c.R = float64(v>>16&0xff) / 255
	return c, nil
}

// formatHexColor emits "#rrggbb", or "#rrggbbaa" when alpha is not 1.
func formatHexColor(c Color) string {
	rgba := c.toRGBA()
	if rgba.A != 255 {
		return fmt.Sprintf("#%02x%02x%02x%02x", rgba.R, rgba.G, rgba.B, rgba.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

// parseDurationKey splits an ordered "from-to" keyframe index pair.
func parseDurationKey(key string) (from, to int, err error) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid transition key %q", key)
	}
	from, err = strconv.Atoi(parts[0])
	if err == nil {
		to, err = strconv.Atoi(parts[1])
	}
	if err != nil || from < 0 || from >= KeyframeCount || to < 0 || to >= KeyframeCount {
		return 0, 0, fmt.Errorf("invalid transition key %q", key)
	}
	return from, to, nil
}
