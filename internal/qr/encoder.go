package qr

import (
	"errors"
	"fmt"
)

const (
	EngineRSC   = "rsc"
	EngineSkip2 = "skip2"
)

var (
	ErrTextTooLong   = errors.New("text too long to encode")
	ErrUnknownEngine = errors.New("unknown qr engine")
)

// Matrix is a square QR symbol without its quiet zone.
type Matrix interface {
	Size() int
	Black(x, y int) bool
}

// Encoder turns text into a QR symbol at a fixed error-correction level.
type Encoder interface {
	Encode(text string) (Matrix, error)
}

// Engines lists the accepted engine names.
func Engines() []string {
	return []string{EngineRSC, EngineSkip2}
}

func NewEncoder(engine string) (Encoder, error) {
	switch engine {
	case EngineRSC:
		return NewRSCEncoder(), nil
	case EngineSkip2:
		return NewSkip2Encoder(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
}

// Generator encodes text and renders the symbol as SVG.
type Generator struct {
	encoder Encoder
	scale   int
	border  int
}

func NewGenerator(engine string, scale, border int) (*Generator, error) {
	enc, err := NewEncoder(engine)
	if err != nil {
		return nil, err
	}

	return NewGeneratorWithEncoder(enc, scale, border), nil
}

func NewGeneratorWithEncoder(enc Encoder, scale, border int) *Generator {
	return &Generator{
		encoder: enc,
		scale:   scale,
		border:  border,
	}
}

func (g *Generator) SVG(text string) (string, error) {
	m, err := g.encoder.Encode(text)
	if err != nil {
		return "", err
	}

	return RenderSVG(m, g.scale, g.border), nil
}
