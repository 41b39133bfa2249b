package button

import "testing"

const testSheet = `{
	"rounded": {
		"#square_button": false,
		"#all_round_button": true,
		"#banner_button": [true, true, false, false],
		"#broken_button": [true, false],
		"#weird_button": "yes"
	},
	"hanging": {
		"#events_button": true
	},
	"shadow": {
		"#lit_from_right": [false, false, true, true],
		"#broken_shadow": true
	}
}`

func TestStylesRoundedShapes(t *testing.T) {
	s, err := ParseStyles([]byte(testSheet))
	if err != nil {
		t.Fatalf("ParseStyles: %v", err)
	}

	cases := []struct {
		id   string
		want CornerMask
	}{
		{"#square_button", 0},
		{"#all_round_button", AllCorners},
		{"#banner_button", Corners(true, true, false, false)},
		{"#broken_button", AllCorners},  // wrong length falls back
		{"#weird_button", AllCorners},   // wrong type falls back
		{"#unknown_button", AllCorners}, // unstyled is not an error
	}
	for _, tc := range cases {
		if got := s.Rounded(tc.id); got != tc.want {
			t.Fatalf("Rounded(%s) = %04b, want %04b", tc.id, got, tc.want)
		}
	}
}

func TestStylesHanging(t *testing.T) {
	s, err := ParseStyles([]byte(testSheet))
	if err != nil {
		t.Fatalf("ParseStyles: %v", err)
	}
	if !s.Hanging("#events_button") {
		t.Fatalf("#events_button should hang")
	}
	if s.Hanging("#unknown_button") {
		t.Fatalf("unknown buttons should not hang")
	}
}

func TestStylesShadowsAcceptOnlyExplicitTuples(t *testing.T) {
	s, err := ParseStyles([]byte(testSheet))
	if err != nil {
		t.Fatalf("ParseStyles: %v", err)
	}
	if got := s.Shadows("#lit_from_right"); got != Edges(false, false, true, true) {
		t.Fatalf("Shadows(#lit_from_right) = %04b", got)
	}
	// A bare bool is not a valid shadow spec; stock lighting applies.
	if got := s.Shadows("#broken_shadow"); got != TopLeftShadow {
		t.Fatalf("Shadows(#broken_shadow) = %04b, want stock", got)
	}
	if got := s.Shadows("#unknown_button"); got != TopLeftShadow {
		t.Fatalf("Shadows(unknown) = %04b, want stock", got)
	}
}

func TestStylesMissingTables(t *testing.T) {
	s, err := ParseStyles([]byte(`{}`))
	if err != nil {
		t.Fatalf("ParseStyles: %v", err)
	}
	if s.Rounded("#x") != AllCorners || s.Shadows("#x") != TopLeftShadow || s.Hanging("#x") {
		t.Fatalf("empty sheet should resolve to stock defaults")
	}
}
