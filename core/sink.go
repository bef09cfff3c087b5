package core

// Sink receives one frame's worth of draw calls. Implementations are owned
// by the host windowing layer; the simulation hands over a read-only pass per
// frame and never lets a sink retain the entity set.
type Sink interface {
	// Clear erases the previous frame
	Clear()
	// DrawCircle paints one circle by bounding box and color
	DrawCircle(x, y, width, height float64, color RGB)
}

// Presenter is an optional Sink extension for double-buffered hosts that
// need an explicit frame flip after the draw pass
type Presenter interface {
	Present()
}
