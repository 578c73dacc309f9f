package main

type Rectangle struct {
	Min Pt
	Max Pt
}

func NewRectangleI(x, y, width, height int64) Rectangle {
	return Rectangle{Pt{x, y}, Pt{x + width, y + height}}
}

func (r *Rectangle) Width() int64 {
	return r.Max.X - r.Min.X
}

func (r *Rectangle) Height() int64 {
	return r.Max.Y - r.Min.Y
}

func (r *Rectangle) ContainsPt(pt Pt) bool {
	return pt.X >= r.Min.X && pt.X <= r.Max.X && pt.Y >= r.Min.Y && pt.Y <= r.Max.Y
}

func (r *Rectangle) Center() Pt {
	return Pt{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

func (r *Rectangle) Translated(offset Pt) Rectangle {
	return Rectangle{r.Min.Plus(offset), r.Max.Plus(offset)}
}
