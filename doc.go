/*
Package zplraster parses a ZPL (Zebra Programming Language) label, interprets
it into a positioned element list, and rasterizes it to a pixmap.

The pipeline is three stages, each owned by an internal package:

	raw text ──▶ [parser] ──▶ []Command ──▶ [interpreter] ──▶ Label ──▶ [render] ──▶ image/PNG

Render is the single entry point most callers need:

	fonts := zplraster.DefaultFonts()
	img, err := zplraster.Render([]byte(zpl), fonts)

Callers that print on real hardware should supply their own font blobs via
FontSet.Add — DefaultFonts exists so the package (and its tests) work
without one.
*/
package zplraster
