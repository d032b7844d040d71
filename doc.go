/*
Package bgst extracts the raster tiles of BGST background scene containers.

A container holds a fixed 64-byte big-endian header, an array of 16-byte
grid placement records, and a run of fixed-size compressed image blocks.
Records point into the block array by index: a cell's main image is
CMPR-encoded (4x4 block-compressed true color) and its optional
transparency mask is I4-encoded (4-bit intensity).

The package focuses on practical workflows: validate and parse the header,
materialize the grid records, decode every referenced block into raw RGBA,
optionally merge each main image with its mask, and write the results as
numbered PNG files. Containers are never modified or rewritten.
*/
package bgst
