package zplraster

import (
	"image"

	"github.com/labelworks/zplraster/internal/interpreter"
	"github.com/labelworks/zplraster/internal/parser"
	"github.com/labelworks/zplraster/internal/render"
)

// Render runs the full pipeline — parse, interpret, rasterize — on a ZPL
// command stream and returns the resulting pixmap (spec.md §2). It renders
// the last `^XA…^XZ` envelope found in zpl, per spec.md §4.1.
func Render(zpl []byte, fonts FontSet, opts ...Option) (image.Image, error) {
	cfg := newRenderConfig(opts)

	cmds, err := parseCommands(zpl)
	if err != nil {
		return nil, err
	}

	lbl, err := interpreter.Interpret(cmds, cfg.logger)
	if err != nil {
		return nil, &InterpretError{Err: err}
	}

	img, err := render.Render(lbl, fonts, cfg.logger)
	if err != nil {
		return nil, &RenderError{Err: err}
	}
	return img, nil
}

// RenderPNG is Render with the pixmap encoded as a PNG byte stream
// (spec.md §6: "Output: A PNG byte sequence").
func RenderPNG(zpl []byte, fonts FontSet, opts ...Option) ([]byte, error) {
	cfg := newRenderConfig(opts)

	cmds, err := parseCommands(zpl)
	if err != nil {
		return nil, err
	}
	lbl, err := interpreter.Interpret(cmds, cfg.logger)
	if err != nil {
		return nil, &InterpretError{Err: err}
	}
	png, err := render.RenderPNG(lbl, fonts, cfg.logger)
	if err != nil {
		return nil, &RenderError{Err: err}
	}
	return png, nil
}

func parseCommands(zpl []byte) ([]parser.Command, error) {
	cmds, err := parser.Parse(zpl)
	if err != nil {
		return nil, fromParserError(err)
	}
	return cmds, nil
}

func interpretCommands(cmds []parser.Command) (*Label, error) {
	lbl, err := interpreter.Interpret(cmds, nil)
	if err != nil {
		return nil, &InterpretError{Err: err}
	}
	return lbl, nil
}
