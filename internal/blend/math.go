// Package blend provides the integer math behind alpha compositing.
//
// Channel values are 8-bit, alpha is straight (not premultiplied) and the
// blend weight of a source pixel is alpha/255.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// div255Round divides x by 255 and rounds to the nearest integer.
//
// x is always a sum of byte products weighted to 255, so it never exceeds
// 255*255. An exact tie cannot occur because 255 is odd.
func div255Round(x uint32) uint8 {
	return uint8((x + 127) / 255)
}

// mulDiv255 multiplies two bytes and divides by 255 with rounding.
func mulDiv255(a, b uint8) uint8 {
	return div255Round(uint32(a) * uint32(b))
}

// inv255 computes 255 - x (inverse alpha).
func inv255(x uint8) uint8 {
	return 255 - x
}

// Lerp blends src over dst with weight alpha/255:
//
//	dst*(1-a) + src*a, a = alpha/255
//
// rounded to the nearest integer. alpha == 255 returns src, alpha == 0
// returns dst.
func Lerp(dst, src, alpha uint8) uint8 {
	switch alpha {
	case 0:
		return dst
	case 255:
		return src
	}
	return div255Round(uint32(dst)*uint32(inv255(alpha)) + uint32(src)*uint32(alpha))
}

// Scale returns c*alpha/255 rounded, i.e. c composited over black.
func Scale(c, alpha uint8) uint8 {
	return mulDiv255(c, alpha)
}
