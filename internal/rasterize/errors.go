package rasterize

import "errors"

var errUnsupportedSymbology = errors.New("rasterize: unsupported symbology")
