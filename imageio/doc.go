// Package imageio converts between image files and ndimage buffers.
//
// Decoding supports PNG, JPEG and GIF from the standard library plus TIFF
// and BMP from golang.org/x/image. 8-bit gray images become Uint8
// buffers, 16-bit gray images Uint16 buffers and everything else RGB8
// buffers, unless AsGray asks for luminance. Buffers are 2-D with shape
// {height, width}.
package imageio
