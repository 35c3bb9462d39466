// Package imagegrid converts between images and occupancy grids. Dark
// pixels become walls; a solved route is painted back onto a black and white
// rendering of the grid.
//
// PNG, JPEG, GIF and the PNM family (PBM, PGM, PPM) can be decoded. Results
// are written as PNG or JPEG depending on the file extension.
package imagegrid
