// Package render rasterizes function plots into RGBA images.
//
// A frame is an explicit, ordered list of [Layer] values passed to
// [Render]; nothing is accumulated by mutation between frames:
//
//   - [Axes]: axes through the origin with nice ticks
//   - [Curve]: polyline of the sampled function
//   - [Rectangles]: translucent Riemann boxes
//   - [Title], [Legend], [Caption]: text overlays
//
// Text is drawn with tinyfont bitmap fonts through the [Canvas], which
// satisfies the tinygo drivers.Displayer interface.
package render
