package render

import "raycast-dda/pkg/raycast"

// FrameStats tallies how the rays of one frame ended.
type FrameStats struct {
	Rays        int
	Hits        int
	Escaped     int
	MaxDistance int
	// MeanLength is the average traveled length over all rays.
	MeanLength float64
}

// Tally summarises rays.
func Tally(rays []raycast.Ray) FrameStats {
	s := FrameStats{Rays: len(rays)}
	if len(rays) == 0 {
		return s
	}
	total := 0.0
	for _, r := range rays {
		switch r.Stop {
		case raycast.StopHit:
			s.Hits++
		case raycast.StopEscaped:
			s.Escaped++
		default:
			s.MaxDistance++
		}
		total += r.Length
	}
	s.MeanLength = total / float64(len(rays))
	return s
}

// Add accumulates o into s, weighting the mean by ray count.
func (s *FrameStats) Add(o FrameStats) {
	rays := s.Rays + o.Rays
	if rays > 0 {
		s.MeanLength = (s.MeanLength*float64(s.Rays) + o.MeanLength*float64(o.Rays)) / float64(rays)
	}
	s.Rays = rays
	s.Hits += o.Hits
	s.Escaped += o.Escaped
	s.MaxDistance += o.MaxDistance
}
