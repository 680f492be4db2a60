package game

// floatsPerVertex is the rect vertex layout: x, y, r, g, b, a.
const floatsPerVertex = 6

// vertsPerQuad: two triangles, TL TR BL then TR BR BL.
const vertsPerQuad = 6

// appendQuad appends the two triangles covering r, in playfield pixels.
func appendQuad(buf []float32, r Rect, col RGB) []float32 {
	if r.Empty() {
		return buf
	}
	cr, cg, cb := col.Floats()
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.X+r.W), float32(r.Y+r.H)
	return append(buf,
		x0, y0, cr, cg, cb, 1,
		x1, y0, cr, cg, cb, 1,
		x0, y1, cr, cg, cb, 1,
		x1, y0, cr, cg, cb, 1,
		x1, y1, cr, cg, cb, 1,
		x0, y1, cr, cg, cb, 1,
	)
}
