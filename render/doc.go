// SPDX-License-Identifier: EPL-2.0

// Package render rasterizes amplitude series into transparent waveform
// images, one PNG per video frame.
//
// Each frame is an antialiased polyline with rounded joins at a fixed
// stroke width, drawn in a single configured color on a fully
// transparent canvas of exact pixel dimensions. The vertical axis is
// auto-scaled per frame to the chunk's own amplitude range (with a
// small epsilon span substituted for flat chunks such as silence), and
// the horizontal axis spans the chunk's own duration.
//
//	r, _ := render.New(render.Config{Width: 1920, Height: 400, Color: c})
//	err := r.Render(series, "frame_00000.png")
//
// Renderers hold no mutable drawing state between calls; a fresh
// context is allocated per frame, so one Renderer may serve many
// goroutines rendering different frames concurrently.
package render
