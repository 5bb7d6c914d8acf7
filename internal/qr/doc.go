// Package qr encodes text into QR symbols and renders them as SVG documents.
//
// Two encoding engines are available:
//
//   - rsc:   rsc.io/qr, accepts any string including the empty one
//   - skip2: github.com/skip2/go-qrcode, with the empty string delegated to rsc
//
// Both use the Medium error-correction level. Rendering is deterministic: the
// same matrix, scale and border always yield a byte-identical document.
//
// Usage:
//
//	gen, err := qr.NewGenerator(qr.EngineRSC, 4, 4)
//	if err != nil {
//	    return err
//	}
//	svg, err := gen.SVG("https://example.com")
package qr
