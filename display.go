package gfx

import "log/slog"

// Rotation selects one of the four cardinal display orientations.
type Rotation uint8

// The four cardinal rotations, counted clockwise from the panel's native
// orientation. Odd rotations swap the logical width and height.
const (
	Rotation0 Rotation = iota
	Rotation90
	Rotation180
	Rotation270
)

// Display is a drawing engine bound to one driver. It holds the frame
// state (logical extents under rotation, text cursor, font, colors,
// magnification, wrap flag) and dispatches every primitive to the cheapest
// capability the driver declared.
//
// A Display owns no pixel memory; it is a pure pass-through of draw
// intents. It is not safe for concurrent use.
type Display struct {
	drv Driver

	// Resolved capability table. A nil slot means the driver did not
	// declare the capability and the software fallback is used.
	batch  Batcher
	wpix   PixelWriter
	wvline VLineWriter
	whline HLineWriter
	wline  LineWriter
	wrect  RectWriter
	dvline VLineDrawer
	dhline HLineDrawer
	dline  LineDrawer
	drect  RectFiller
	dfill  ScreenFiller
	rot    RotationNotifier
	inv    Inverter

	rawWidth, rawHeight int16 // panel extents, fixed at construction
	width, height       int16 // logical extents under rotation
	rotation            Rotation

	cursorX, cursorY int16
	textColor        Color
	textBG           Color
	sizeX, sizeY     int16
	wrap             bool
	cp437            bool
	font             *Font // nil selects the built-in 6x8 font
}

// NewDisplay builds a Display for the given driver and raw panel extents.
// The driver's optional capabilities are resolved here, once.
//
// Defaults: rotation 0, cursor (0,0), text size 1, text color White with
// an equal background (transparent), wrap enabled, built-in font.
func NewDisplay(drv Driver, w, h int16, opts ...Option) *Display {
	d := &Display{
		drv:       drv,
		rawWidth:  w,
		rawHeight: h,
		width:     w,
		height:    h,
		textColor: White,
		textBG:    White,
		sizeX:     1,
		sizeY:     1,
		wrap:      true,
	}

	d.batch, _ = drv.(Batcher)
	d.wpix, _ = drv.(PixelWriter)
	d.wvline, _ = drv.(VLineWriter)
	d.whline, _ = drv.(HLineWriter)
	d.wline, _ = drv.(LineWriter)
	d.wrect, _ = drv.(RectWriter)
	d.dvline, _ = drv.(VLineDrawer)
	d.dhline, _ = drv.(HLineDrawer)
	d.dline, _ = drv.(LineDrawer)
	d.drect, _ = drv.(RectFiller)
	d.dfill, _ = drv.(ScreenFiller)
	d.rot, _ = drv.(RotationNotifier)
	d.inv, _ = drv.(Inverter)

	Logger().Debug("display created",
		slog.Int("width", int(w)),
		slog.Int("height", int(h)),
		slog.Bool("batch", d.batch != nil),
		slog.Bool("fillRect", d.drect != nil),
		slog.Bool("fillScreen", d.dfill != nil),
		slog.Bool("line", d.dline != nil))

	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Width returns the logical display width under the current rotation.
func (d *Display) Width() int16 { return d.width }

// Height returns the logical display height under the current rotation.
func (d *Display) Height() int16 { return d.height }

// Rotation returns the current rotation setting.
func (d *Display) Rotation() Rotation { return d.rotation }

// SetRotation changes the logical orientation. Odd rotations swap the
// reported width and height. Drivers implementing RotationNotifier are
// told so they can remap coordinates.
func (d *Display) SetRotation(r Rotation) {
	d.rotation = r & 3
	switch d.rotation {
	case Rotation0, Rotation180:
		d.width = d.rawWidth
		d.height = d.rawHeight
	case Rotation90, Rotation270:
		d.width = d.rawHeight
		d.height = d.rawWidth
	}
	if d.rot != nil {
		d.rot.SetRotation(d.rotation)
	}
	Logger().Debug("rotation changed",
		slog.Int("rotation", int(d.rotation)),
		slog.Int("width", int(d.width)),
		slog.Int("height", int(d.height)))
}

// InvertDisplay toggles display inversion on drivers that support it
// (ideally a panel command); drivers without the capability ignore it.
func (d *Display) InvertDisplay(on bool) {
	if d.inv != nil {
		d.inv.InvertDisplay(on)
	}
}

// DrawPixel sets a single pixel through the driver's mandatory operation.
func (d *Display) DrawPixel(x, y int16, c Color) {
	d.drv.DrawPixel(x, y, c)
}

// startWrite opens a batch bracket on drivers that buffer bursts.
func (d *Display) startWrite() {
	if d.batch != nil {
		d.batch.StartWrite()
	}
}

// endWrite closes the batch bracket opened by startWrite.
func (d *Display) endWrite() {
	if d.batch != nil {
		d.batch.EndWrite()
	}
}

// writePixel is the bracketed pixel write every synthesized path bottoms
// out in. Must be called between startWrite and endWrite.
func (d *Display) writePixel(x, y int16, c Color) {
	if d.wpix != nil {
		d.wpix.WritePixel(x, y, c)
		return
	}
	d.drv.DrawPixel(x, y, c)
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}
