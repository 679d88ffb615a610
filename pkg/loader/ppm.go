package loader

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"io"
)

// decodePPM parses a binary PPM (P6) stream, the format dcraw emits on
// stdout. Both 8-bit and 16-bit samples are accepted; 16-bit input is
// scaled down to 8-bit.
func decodePPM(data []byte) (*image.NRGBA, error) {
	r := bufio.NewReader(bytes.NewReader(data))

	magic, err := readPPMToken(r)
	if err != nil {
		return nil, fmt.Errorf("ppm: %w", err)
	}
	if magic != "P6" {
		return nil, fmt.Errorf("ppm: unsupported magic %q", magic)
	}
	w, err := readPPMInt(r)
	if err != nil {
		return nil, fmt.Errorf("ppm width: %w", err)
	}
	h, err := readPPMInt(r)
	if err != nil {
		return nil, fmt.Errorf("ppm height: %w", err)
	}
	maxval, err := readPPMInt(r)
	if err != nil {
		return nil, fmt.Errorf("ppm maxval: %w", err)
	}
	if w <= 0 || h <= 0 || maxval <= 0 || maxval > 65535 {
		return nil, fmt.Errorf("ppm: bad header %dx%d maxval %d", w, h, maxval)
	}

	bytesPerSample := 1
	if maxval > 255 {
		bytesPerSample = 2
	}
	raw := make([]byte, w*h*3*bytesPerSample)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("ppm pixel data: %w", err)
	}

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	src := 0
	for dst := 0; dst < len(out.Pix); dst += 4 {
		for c := 0; c < 3; c++ {
			if bytesPerSample == 2 {
				v := int(raw[src])<<8 | int(raw[src+1])
				out.Pix[dst+c] = uint8(v * 255 / maxval)
				src += 2
			} else {
				out.Pix[dst+c] = raw[src]
				src++
			}
		}
		out.Pix[dst+3] = 0xff
	}
	return out, nil
}

// readPPMToken reads the next whitespace-delimited token, skipping
// '#'-comments the way netpbm headers allow.
func readPPMToken(r *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			if len(tok) > 0 && err == io.EOF {
				return string(tok), nil
			}
			return "", err
		}
		switch {
		case b == '#':
			if _, err := r.ReadString('\n'); err != nil && err != io.EOF {
				return "", err
			}
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			if b == '\r' {
				// a CRLF pair is one delimiter; leaving the LF behind would
				// shift the pixel data that follows the header
				if next, perr := r.Peek(1); perr == nil && next[0] == '\n' {
					r.Discard(1)
				}
			}
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

func readPPMInt(r *bufio.Reader) (int, error) {
	tok, err := readPPMToken(r)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, c := range tok {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid integer %q", tok)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}
