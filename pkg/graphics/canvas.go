package graphics

// Canvas is the drawing surface interface. Render objects paint onto a
// Canvas without knowing whether it records, rasterizes, or forwards to a
// platform surface.
type Canvas interface {
	Save()
	Restore()
	Translate(dx, dy float64)
	ClipRect(rect Rect)
	ClipRRect(rrect RRect)
	Clear(color Color)
	DrawRect(rect Rect, paint Paint)
	DrawRRect(rrect RRect, paint Paint)
	DrawCircle(center Offset, radius float64, paint Paint)
	DrawLine(start, end Offset, paint Paint)
	DrawText(layout *TextLayout, position Offset)
	Size() Size
}
