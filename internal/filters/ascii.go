package filters

import (
	"bytes"
	"encoding/ascii85"
	"fmt"
	"io"
)

// ASCIIHexDecode decodes ASCII hexadecimal encoded data. Whitespace is
// ignored, > marks end of data, and a trailing odd digit is padded with 0.
func ASCIIHexDecode(data []byte) ([]byte, error) {
	out := make([]byte, 0, len(data)/2)
	var hi byte
	have := false

	for _, c := range data {
		if isWhitespace(c) {
			continue
		}
		if c == '>' {
			break
		}
		v, err := hexDigit(c)
		if err != nil {
			return nil, err
		}
		if !have {
			hi = v << 4
			have = true
		} else {
			out = append(out, hi|v)
			have = false
		}
	}
	if have {
		out = append(out, hi)
	}
	return out, nil
}

// ASCII85Decode decodes ASCII base-85 encoded data. The optional <~ prefix
// and the ~> end-of-data marker are stripped before decoding.
func ASCII85Decode(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, []byte("<~"))
	if i := bytes.Index(data, []byte("~>")); i >= 0 {
		data = data[:i]
	}

	dec := ascii85.NewDecoder(bytes.NewReader(data))
	out, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("ascii85: %w", err)
	}
	return out, nil
}

func hexDigit(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	}
	return 0, fmt.Errorf("invalid hex digit: %q", c)
}

func isWhitespace(c byte) bool {
	switch c {
	case 0, '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}
