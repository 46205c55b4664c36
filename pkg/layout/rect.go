package layout

// Rect is a placed rectangular region on the 2-D grid.
// All coordinates are in user units.
type Rect struct {
	Left, Right float64
	Bottom, Top float64
}

// Width returns the horizontal span of the rect.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical span of the rect.
func (r Rect) Height() float64 { return r.Top - r.Bottom }

// CenterX returns the horizontal center point of the rect.
func (r Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical center point of the rect.
func (r Rect) CenterY() float64 { return (r.Bottom + r.Top) / 2 }
