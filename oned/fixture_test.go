package oned

import (
	"github.com/arvovision/barcode/bitutil"
)

// quietModules is the number of blank modules placed on each side of a
// hand-built row. It only needs to exceed the widest guard pattern so the
// quiet-zone checks in DecodeUPCEAN/ITF/Codabar pass.
const quietModules = 12

// expandRun turns a sequence of element widths into a row of modules,
// alternating bar/space starting with a bar. This mirrors how every 1D
// format in this package actually lays out modules (UPC/EAN digit patterns,
// Code 39/Codabar narrow-wide patterns, Code 128 symbol patterns, ITF digit
// pairs) without going through a standalone encoder: the decoders below
// match on run widths, not on which run is "supposed" to be a bar, so
// reconstructing the widths is sufficient to drive them.
func expandRun(widths []int) []bool {
	modules := make([]bool, 0, 16)
	bar := true
	for _, w := range widths {
		for i := 0; i < w; i++ {
			modules = append(modules, bar)
		}
		bar = !bar
	}
	return modules
}

// rowFromRuns lays out one or more width sequences back to back and pads
// both ends with quiet-zone modules, returning a ready-to-decode BitArray.
func rowFromRuns(runs ...[]int) *bitutil.BitArray {
	var flat []int
	for _, r := range runs {
		flat = append(flat, r...)
	}
	modules := expandRun(flat)
	row := bitutil.NewBitArray(len(modules) + 2*quietModules)
	for i, on := range modules {
		if on {
			row.Set(quietModules + i)
		}
	}
	return row
}

// --- Code 39 ---

// buildCode39 lays out a Code 39 row for text, which must already contain
// only characters from code39Alphabet (no leading/trailing asterisk).
func buildCode39(text string) *bitutil.BitArray {
	full := "*" + text + "*"
	var runs [][]int
	for i := 0; i < len(full); i++ {
		ch := full[i]
		var enc int
		if ch == '*' {
			enc = code39AsteriskEncoding
		} else {
			enc = code39CharacterEncodings[indexByte(code39Alphabet, ch)]
		}
		runs = append(runs, narrowWideRun(enc, 9))
		if i != len(full)-1 {
			runs = append(runs, []int{1}) // inter-character gap
		}
	}
	return rowFromRuns(runs...)
}

func buildCode39WithCheckDigit(text string) *bitutil.BitArray {
	total := 0
	for i := 0; i < len(text); i++ {
		total += indexByte(code39Alphabet, text[i])
	}
	check := code39Alphabet[total%43]
	return buildCode39(text + string(check))
}

// narrowWideRun expands a narrow/wide bit-packed encoding (as used by
// code39CharacterEncodings and codabarCharacterEncodings) into element
// widths: bit (numElements-1-i) set means element i is wide (2 modules),
// clear means narrow (1 module).
func narrowWideRun(encoding, numElements int) []int {
	widths := make([]int, numElements)
	for i := 0; i < numElements; i++ {
		if encoding&(1<<uint(numElements-1-i)) != 0 {
			widths[i] = 2
		} else {
			widths[i] = 1
		}
	}
	return widths
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// --- Codabar ---

func buildCodabar(text string) *bitutil.BitArray {
	full := "A" + text + "B"
	var runs [][]int
	for i := 0; i < len(full); i++ {
		enc := codabarCharacterEncodings[indexByte(codabarAlphabet, full[i])]
		runs = append(runs, narrowWideRun(enc, 7))
		if i != len(full)-1 {
			runs = append(runs, []int{1})
		}
	}
	return rowFromRuns(runs...)
}

// --- ITF ---

func buildITF(digits string) *bitutil.BitArray {
	runs := [][]int{itfStartPattern}
	for i := 0; i+1 < len(digits); i += 2 {
		d0 := int(digits[i] - '0')
		d1 := int(digits[i+1] - '0')
		pair := make([]int, 10)
		for k := 0; k < 5; k++ {
			pair[2*k] = itfPatterns[d0][k]
			pair[2*k+1] = itfPatterns[d1][k]
		}
		runs = append(runs, pair)
	}
	end := make([]int, len(itfEndPatternReversed[0]))
	for i, w := range itfEndPatternReversed[0] {
		end[len(end)-1-i] = w
	}
	runs = append(runs, end)
	return rowFromRuns(runs...)
}

// --- Code 128 ---

func buildCode128(text string) *bitutil.BitArray {
	codes := []int{code128StartB}
	checksum := code128StartB
	for i := 0; i < len(text); i++ {
		value := int(text[i]) - 32
		codes = append(codes, value)
		checksum += (i + 1) * value
	}
	codes = append(codes, checksum%103)
	codes = append(codes, code128Stop)

	var runs [][]int
	for _, c := range codes {
		runs = append(runs, Code128Patterns[c])
	}
	return rowFromRuns(runs...)
}

// --- UPC/EAN family ---

func buildEAN13(digits string) *bitutil.BitArray {
	first := int(digits[0] - '0')
	parity := ean13FirstDigitEncodings[first]
	runs := [][]int{UPCEANStartEndPattern}
	for x := 0; x < 6; x++ {
		d := int(digits[1+x] - '0')
		if parity&(1<<uint(5-x)) != 0 {
			runs = append(runs, LAndGPatterns[10+d])
		} else {
			runs = append(runs, LPatterns[d])
		}
	}
	runs = append(runs, UPCEANMiddlePattern)
	for x := 0; x < 6; x++ {
		d := int(digits[7+x] - '0')
		runs = append(runs, LPatterns[d])
	}
	runs = append(runs, UPCEANStartEndPattern)
	return rowFromRuns(runs...)
}

// buildUPCA builds the full EAN-13-compatible row for a 12-digit UPC-A value
// (11 data digits + check digit); UPC-A is EAN-13 with an implicit leading 0.
func buildUPCA(digits string) *bitutil.BitArray {
	return buildEAN13("0" + digits)
}

func buildEAN8(digits string) *bitutil.BitArray {
	runs := [][]int{UPCEANStartEndPattern}
	for x := 0; x < 4; x++ {
		runs = append(runs, LPatterns[digits[x]-'0'])
	}
	runs = append(runs, UPCEANMiddlePattern)
	for x := 0; x < 4; x++ {
		runs = append(runs, LPatterns[digits[4+x]-'0'])
	}
	runs = append(runs, UPCEANStartEndPattern)
	return rowFromRuns(runs...)
}

// buildUPCE lays out an 8-character UPC-E string (number system digit,
// 6 compressed body digits, check digit).
func buildUPCE(digits string) *bitutil.BitArray {
	numSys := int(digits[0] - '0')
	check := int(digits[7] - '0')
	parity := upceNumSysAndCheckDigitPatterns[numSys][check]
	runs := [][]int{UPCEANStartEndPattern}
	for x := 0; x < 6; x++ {
		d := int(digits[1+x] - '0')
		if parity&(1<<uint(5-x)) != 0 {
			runs = append(runs, LAndGPatterns[10+d])
		} else {
			runs = append(runs, LAndGPatterns[d])
		}
	}
	runs = append(runs, UPCEANEndPattern)
	return rowFromRuns(runs...)
}
