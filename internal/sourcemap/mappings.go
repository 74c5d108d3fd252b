package sourcemap

import "strings"

const base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// encodeMappings renders segs as the semicolon/comma-separated Base64 VLQ
// "mappings" string Source Map v3 requires. Per the spec, every field except
// dst_col is encoded relative to the previous occurrence of that field
// anywhere earlier in the stream; dst_col resets relative to the start of
// each output line.
func encodeMappings(segs []Segment) string {
	var out strings.Builder

	var prevDstLine, prevDstCol, prevSrcLine, prevSrcCol, prevSrcID, prevNameID int
	lineOpen := false

	for _, seg := range segs {
		for prevDstLine < seg.DstLine {
			out.WriteByte(';')
			prevDstLine++
			prevDstCol = 0
			lineOpen = false
		}
		if lineOpen {
			out.WriteByte(',')
		}
		lineOpen = true

		writeVLQ(&out, seg.DstCol-prevDstCol)
		prevDstCol = seg.DstCol

		if seg.SrcID != nil {
			writeVLQ(&out, *seg.SrcID-prevSrcID)
			prevSrcID = *seg.SrcID

			writeVLQ(&out, seg.SrcLine-prevSrcLine)
			prevSrcLine = seg.SrcLine

			writeVLQ(&out, seg.SrcCol-prevSrcCol)
			prevSrcCol = seg.SrcCol

			if seg.NameID != nil {
				writeVLQ(&out, *seg.NameID-prevNameID)
				prevNameID = *seg.NameID
			}
		}
	}

	return out.String()
}

// writeVLQ appends n encoded as a Base64 VLQ: sign in the low bit, 5 data
// bits per digit, continuation bit set on every digit but the last.
func writeVLQ(out *strings.Builder, n int) {
	v := n << 1
	if n < 0 {
		v = (-n << 1) | 1
	}
	for {
		digit := v & 0x1f
		v >>= 5
		if v > 0 {
			digit |= 0x20
		}
		out.WriteByte(base64Chars[digit])
		if v == 0 {
			break
		}
	}
}
