package export

import (
	"strings"
	"testing"
)

func TestTrackToSVG(t *testing.T) {
	points := []TrackPoint{{X: -100, Z: -100}, {X: 0, Z: 0}, {X: 200, Z: 150}}
	svg := TrackToSVG(points, 1500, 600)

	if !strings.HasPrefix(svg, `<?xml`) {
		t.Error("missing xml declaration")
	}
	for _, want := range []string{"<svg", "</svg>", "<path", "stroke-dasharray"} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}

	// The origin projects to the center of the viewBox.
	if !strings.Contains(svg, "L300.0 300.0") {
		t.Error("origin sample should land at the image center")
	}
}

func TestTrackToSVGGuards(t *testing.T) {
	if TrackToSVG(nil, 1500, 600) != "" {
		t.Error("no points, no image")
	}
	if TrackToSVG([]TrackPoint{{X: 1}}, 1500, 600) != "" {
		t.Error("a single point has no track")
	}
	if TrackToSVG([]TrackPoint{{}, {X: 1}}, 0, 600) != "" {
		t.Error("a zero-sized water plane cannot be projected")
	}
	if TrackToSVG([]TrackPoint{{}, {X: 1}}, 1500, 0) != "" {
		t.Error("a zero-sized image cannot be drawn")
	}
}
