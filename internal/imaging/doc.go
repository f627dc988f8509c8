// Package imaging converts raster images into dot grids.
//
// The pipeline is decode, scale to the grid's dot extent, convert to binary
// dots by luminance threshold or Floyd-Steinberg dithering, and optionally
// transfer per-cell average color. GIF animations decode into frame
// sequences for playback through the animation loop.
package imaging
