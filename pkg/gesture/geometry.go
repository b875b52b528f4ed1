package gesture

import "math"

type Point struct {
	X, Y float64
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Rect is an axis-aligned rectangle in view coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) IsZero() bool {
	return r.W <= 0 || r.H <= 0
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside r. Edges count as inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Card is a displayed note and where the view drew it.
type Card struct {
	ID   string
	Rect Rect
}

// closest returns the card whose rectangle center is nearest to p. Ties keep
// the earlier card.
func closest(p Point, cards []Card) (Card, bool) {
	if len(cards) == 0 {
		return Card{}, false
	}
	best := cards[0]
	bestDist := p.Dist(best.Rect.Center())
	for _, card := range cards[1:] {
		if d := p.Dist(card.Rect.Center()); d < bestDist {
			best, bestDist = card, d
		}
	}
	return best, true
}
