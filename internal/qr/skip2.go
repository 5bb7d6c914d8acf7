package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// go-qrcode cannot encode the empty string; skip2Encoder hands that one
// input to rsc.io/qr.
type skip2Encoder struct {
	empty Encoder
}

type bitmapMatrix [][]bool

func NewSkip2Encoder() Encoder {
	return skip2Encoder{empty: NewRSCEncoder()}
}

func (e skip2Encoder) Encode(text string) (Matrix, error) {
	if text == "" {
		return e.empty.Encode(text)
	}

	code, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTextTooLong, err)
	}
	code.DisableBorder = true

	return bitmapMatrix(code.Bitmap()), nil
}

func (m bitmapMatrix) Size() int {
	return len(m)
}

func (m bitmapMatrix) Black(x, y int) bool {
	if y < 0 || y >= len(m) || x < 0 || x >= len(m[y]) {
		return false
	}
	return m[y][x]
}
