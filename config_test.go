package deckmorph

import (
	"strings"
	"testing"
)

const validYAML = `
keyframes:
  - layout: random-stack
    cards: 16
    card_width: 0.05
    card_height: 1.0
    card_thickness: 0.7
    spacing: 0.1
    stroke: "#ffffff"
    camera: {zoom: 1, rot_x: 18}
  - layout: grouped-stack
    cards: 20
    card_width: 0.05
    card_height: 0.8
    card_thickness: 0.7
    spacing: 0.1
    group_spacing: 0.4
    groups:
      - {percent: 50, stroke: "#ff6b6b"}
      - {percent: 50, stroke: "#6bc8ff"}
    camera: {zoom: 1}
  - layout: wheel
    cards: 12
    card_width: 0.05
    card_height: 0.9
    card_thickness: 0.7
    spacing: 0.1
    stroke: "#f2f2ff80"
    camera: {zoom: 0.85, rot_x: 30}
durations:
  0-1: 800
  1-2: 1400
`

func TestLoadKeyframesValid(t *testing.T) {
	set, err := LoadKeyframes([]byte(validYAML))
	if err != nil {
		t.Fatalf("LoadKeyframes: %v", err)
	}

	if set.Keyframes[0].Kind != LayoutRandomStack ||
		set.Keyframes[1].Kind != LayoutGroupedStack ||
		set.Keyframes[2].Kind != LayoutWheel {
		t.Fatalf("unexpected kinds: %v %v %v",
			set.Keyframes[0].Kind, set.Keyframes[1].Kind, set.Keyframes[2].Kind)
	}
	if got := len(set.Keyframes[1].Groups); got != 2 {
		t.Fatalf("got %d groups, want 2", got)
	}
	assertColor(t, "group 0 stroke", set.Keyframes[1].Groups[0].Stroke,
		Color{R: 1, G: float64(0x6b) / 255, B: float64(0x6b) / 255, A: 1})
	assertNear(t, "wheel stroke alpha", set.Keyframes[2].Stroke.A, float64(0x80)/255)
	assertNear(t, "duration 0-1", set.Durations["0-1"], 800)
}

func TestLoadKeyframesRejections(t *testing.T) {
	cases := []struct {
		name string
		edit func(string) string
		want string
	}{
		{
			"wrong count",
			func(s string) string {
				i := strings.Index(s, "  - layout: wheel")
				return s[:i] + "durations:\n  0-1: 800\n"
			},
			"want 3 keyframes",
		},
		{
			"unknown layout",
			func(s string) string { return strings.Replace(s, "layout: wheel", "layout: spiral", 1) },
			"unknown layout",
		},
		{
			"grouped without groups",
			func(s string) string {
				block := "    groups:\n      - {percent: 50, stroke: \"#ff6b6b\"}\n      - {percent: 50, stroke: \"#6bc8ff\"}\n"
				return strings.Replace(s, block, "", 1)
			},
			"requires groups",
		},
		{
			"bad color",
			func(s string) string { return strings.Replace(s, `"#ff6b6b"`, `"#zz6b6b"`, 1) },
			"invalid color",
		},
		{
			"bad duration key",
			func(s string) string { return strings.Replace(s, "0-1: 800", "0-7: 800", 1) },
			"invalid transition key",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := tc.edit(validYAML)
			_, err := LoadKeyframes([]byte(doc))
			if err == nil {
				t.Fatal("no error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadKeyframesGroupsOnOtherLayouts(t *testing.T) {
	// Groups on a non-grouped layout are carried but ignored by the engine.
	doc := strings.Replace(validYAML, "layout: random-stack",
		"layout: random-stack\n    groups:\n      - {percent: 100, stroke: \"#112233\"}", 1)
	set, err := LoadKeyframes([]byte(doc))
	if err != nil {
		t.Fatalf("LoadKeyframes: %v", err)
	}
	if len(set.Keyframes[0].Groups) != 1 {
		t.Errorf("got %d groups on random stack, want 1 carried through", len(set.Keyframes[0].Groups))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	set, err := LoadKeyframes([]byte(validYAML))
	if err != nil {
		t.Fatalf("LoadKeyframes: %v", err)
	}
	out, err := SaveKeyframes(set)
	if err != nil {
		t.Fatalf("SaveKeyframes: %v", err)
	}
	back, err := LoadKeyframes(out)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}

	for i := range set.Keyframes {
		a, b := &set.Keyframes[i], &back.Keyframes[i]
		if a.Kind != b.Kind || a.CardCount != b.CardCount || len(a.Groups) != len(b.Groups) {
			t.Errorf("keyframe %d changed across round trip", i)
		}
		assertColor(t, "round-trip stroke", b.Stroke, a.Stroke)
	}
	assertNear(t, "round-trip duration", back.Durations["1-2"], 1400)
}

func TestApplyInstallsIntoStore(t *testing.T) {
	set, err := LoadKeyframes([]byte(validYAML))
	if err != nil {
		t.Fatalf("LoadKeyframes: %v", err)
	}
	store := NewStore(DefaultKeyframes())
	v0 := store.Version()
	set.Apply(store)

	if store.Version() == v0 {
		t.Error("Apply did not bump the store version")
	}
	if got := store.Keyframe(0).CardCount; got != 16 {
		t.Errorf("card count = %d, want 16", got)
	}
	assertNear(t, "applied duration", store.DurationFor(0, 1), 800)
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#ff0080")
	if err != nil {
		t.Fatal(err)
	}
	assertColor(t, "rgb", c, Color{R: 1, G: 0, B: float64(0x80) / 255, A: 1})

	c, err = parseHexColor("#00ff0040")
	if err != nil {
		t.Fatal(err)
	}
	assertColor(t, "rgba", c, Color{G: 1, A: float64(0x40) / 255})

	for _, bad := range []string{"", "#fff", "#12345", "#gggggg", "red"} {
		if _, err := parseHexColor(bad); err == nil {
			t.Errorf("parseHexColor(%q) accepted", bad)
		}
	}
}

func TestFormatHexColor(t *testing.T) {
	if got := formatHexColor(Color{R: 1, G: 0.5, B: 0, A: 1}); got != "#ff8000" {
		t.Errorf("formatHexColor = %q, want #ff8000", got)
	}
	if got := formatHexColor(Color{R: 1, A: 0.5}); got != "#ff000080" {
		t.Errorf("formatHexColor with alpha = %q, want #ff000080", got)
	}
}

func TestParseDurationKey(t *testing.T) {
	from, to, err := parseDurationKey("2-0")
	if err != nil || from != 2 || to != 0 {
		t.Fatalf("parseDurationKey(2-0) = %d, %d, %v", from, to, err)
	}
	for _, bad := range []string{"", "1", "a-b", "3-0", "0-3", "-1-2"} {
		if _, _, err := parseDurationKey(bad); err == nil {
			t.Errorf("parseDurationKey(%q) accepted", bad)
		}
	}
}
