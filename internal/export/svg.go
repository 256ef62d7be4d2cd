// Package export renders stored runs into shareable artifacts.
package export

import (
	"fmt"
	"strings"
)

// TrackPoint is one sample of the top-down flight track.
type TrackPoint struct {
	X, Z float64
}

// TrackToSVG draws the top-down flight track over the square water plane.
// waterSize is the plane's edge length; the viewBox covers the whole plane
// so tracks from different runs line up.
func TrackToSVG(points []TrackPoint, waterSize float64, size int) string {
	if len(points) < 2 || waterSize <= 0 || size <= 0 {
		return ""
	}

	half := waterSize / 2
	scale := float64(size) / waterSize
	project := func(p TrackPoint) (float64, float64) {
		return (p.X + half) * scale, (p.Z + half) * scale
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#06283d"/>
`, size, size, size, size))

	// Bounds-reset circle at 0.8 of the water radius.
	cx, cy := float64(size)/2, float64(size)/2
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="#1c4966" stroke-dasharray="6 4"/>
`, cx, cy, half*0.8*scale))

	sb.WriteString(`<path fill="none" stroke="#7ef9a2" stroke-width="1.5" d="M`)
	for i, p := range points {
		x, y := project(p)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f %.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f %.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n")

	sx, sy := project(points[0])
	ex, ey := project(points[len(points)-1])
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3" fill="#ffcc00"/>
<circle cx="%.1f" cy="%.1f" r="3" fill="#ff4444"/>
</svg>`, sx, sy, ex, ey))

	return sb.String()
}
