package gfx

// Option configures a Display during creation.
//
// Example:
//
//	// Landscape orientation with a custom font
//	d := gfx.NewDisplay(fb, 240, 135,
//	    gfx.WithRotation(gfx.Rotation90),
//	    gfx.WithFont(myFont))
type Option func(*Display)

// WithRotation sets the initial rotation. Equivalent to calling
// SetRotation right after NewDisplay.
func WithRotation(r Rotation) Option {
	return func(d *Display) { d.SetRotation(r) }
}

// WithFont sets the initial font. Passing a non-nil font moves the cursor
// onto the baseline, exactly as SetFont does.
func WithFont(f *Font) Option {
	return func(d *Display) { d.SetFont(f) }
}

// WithTextColor sets the initial text color with a transparent background.
func WithTextColor(c Color) Option {
	return func(d *Display) { d.SetTextColor(c) }
}

// WithTextWrap sets the initial wrap behavior at the right display edge.
func WithTextWrap(wrap bool) Option {
	return func(d *Display) { d.SetTextWrap(wrap) }
}

// WithCP437 selects the corrected CP437 charset for the built-in font.
func WithCP437(on bool) Option {
	return func(d *Display) { d.SetCP437(on) }
}
