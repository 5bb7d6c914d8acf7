package qr

import (
	"fmt"

	rscqr "rsc.io/qr"
)

type rscEncoder struct{}

type rscMatrix struct {
	code *rscqr.Code
}

func NewRSCEncoder() Encoder {
	return rscEncoder{}
}

func (rscEncoder) Encode(text string) (Matrix, error) {
	code, err := rscqr.Encode(text, rscqr.M)
	if err != nil {
		// capacity is the only failure rsc.io/qr reports
		return nil, fmt.Errorf("%w: %v", ErrTextTooLong, err)
	}

	return rscMatrix{code: code}, nil
}

func (m rscMatrix) Size() int {
	return m.code.Size
}

func (m rscMatrix) Black(x, y int) bool {
	return m.code.Black(x, y)
}
