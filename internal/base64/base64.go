// Package base64 encodes byte buffers with the RFC 4648 standard alphabet and
// '=' padding.
package base64

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	padding  = '='
)

// EncodedLen returns the length of the encoding of n source bytes.
func EncodedLen(n int) int { return (n + 2) / 3 * 4 }

// Encode returns the base64 encoding of src.
func Encode(src []byte) string {
	return string(AppendEncode(make([]byte, 0, EncodedLen(len(src))), src))
}

// AppendEncode appends the base64 encoding of src to dst and returns the
// extended buffer.
//
// Every 3 input bytes become 4 output symbols of 6 bits each:
//
//	input  -> 1111 2222 | 3333 4444 | 5555 6666
//	output -> 0011 1122 | 0022 3333 | 0044 4455 | 0055 6666
//
// A trailing group of 2 bytes yields 3 symbols and one '=', a trailing single
// byte yields 2 symbols and "==".
func AppendEncode(dst, src []byte) []byte {
	n := len(src) / 3 * 3
	for i := 0; i < n; i += 3 {
		b0, b1, b2 := src[i], src[i+1], src[i+2]
		dst = append(dst,
			alphabet[b0>>2],
			alphabet[(b0&0x03)<<4|b1>>4],
			alphabet[(b1&0x0f)<<2|b2>>6],
			alphabet[b2&0x3f],
		)
	}

	switch rest := src[n:]; len(rest) {
	case 2:
		b0, b1 := rest[0], rest[1]
		dst = append(dst,
			alphabet[b0>>2],
			alphabet[(b0&0x03)<<4|b1>>4],
			alphabet[(b1&0x0f)<<2],
			padding,
		)
	case 1:
		b0 := rest[0]
		dst = append(dst,
			alphabet[b0>>2],
			alphabet[(b0&0x03)<<4],
			padding,
			padding,
		)
	}
	return dst
}
