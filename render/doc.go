// Package render draws finite 2-D tensors with gonum/plot.
//
// A tensor is materialized first, so every axis must be finite; slice an
// unbounded tensor down to the window of interest before rendering. Rows of
// the heat map follow axis 0 and columns follow axis 1, and the plot axes are
// labelled with the tensor's absolute coordinates.
package render
