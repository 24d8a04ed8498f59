package kilo

import "bytes"

// highlightRow recomputes the per-byte highlight classes for render
// according to syntax, seeded with whether the preceding row ended inside
// an open multi-line comment. It returns the highlight slice and whether
// this row itself ends inside an unterminated multi-line comment.
//
// The scan order matches spec §4.4: single-line comment, then multi-line
// comment, then string, then number, then keyword, with the first match
// at each position winning.
func highlightRow(render []byte, syntax *Syntax, openCommentIn bool) ([]int, bool) {
	hl := make([]int, len(render))
	if syntax == nil {
		return hl, false
	}

	scs := []byte(syntax.SingleLine)
	mcs := []byte(syntax.MLCommStart)
	mce := []byte(syntax.MLCommEnd)

	prevSep := true
	var inString byte
	inComment := openCommentIn

	for i := 0; i < len(render); {
		c := render[i]
		prevHl := HLNormal
		if i > 0 {
			prevHl = hl[i-1]
		}

		if len(scs) > 0 && inString == 0 && !inComment && bytes.HasPrefix(render[i:], scs) {
			for j := i; j < len(render); j++ {
				hl[j] = HLComment
			}
			break
		}

		if len(mcs) > 0 && len(mce) > 0 && inString == 0 {
			if inComment {
				hl[i] = HLMLComment
				if bytes.HasPrefix(render[i:], mce) {
					for j := 0; j < len(mce); j++ {
						hl[i+j] = HLMLComment
					}
					i += len(mce)
					inComment = false
					prevSep = true
					continue
				}
				i++
				continue
			} else if bytes.HasPrefix(render[i:], mcs) {
				for j := 0; j < len(mcs); j++ {
					hl[i+j] = HLMLComment
				}
				i += len(mcs)
				inComment = true
				continue
			}
		}

		if syntax.Flags&HighlightStrings != 0 {
			if inString != 0 {
				hl[i] = HLString
				if c == '\\' && i+1 < len(render) {
					hl[i+1] = HLString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				hl[i] = HLString
				i++
				continue
			}
		}

		if syntax.Flags&HighlightNumbers != 0 {
			isDigit := c >= '0' && c <= '9'
			if (isDigit && (prevSep || prevHl == HLNumber)) || (c == '.' && prevHl == HLNumber) {
				hl[i] = HLNumber
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			matched := false
			for _, kw := range syntax.Keywords {
				class := HLKeyword1
				k := kw
				if len(k) > 0 && k[len(k)-1] == '|' {
					class = HLKeyword2
					k = k[:len(k)-1]
				}
				klen := len(k)
				if klen == 0 || i+klen > len(render) {
					continue
				}
				if !bytes.Equal(render[i:i+klen], []byte(k)) {
					continue
				}
				if i+klen < len(render) && !isSeparator(render[i+klen]) {
					continue
				}
				for j := 0; j < klen; j++ {
					hl[i+j] = class
				}
				i += klen
				matched = true
				break
			}
			if matched {
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}

	return hl, inComment
}
