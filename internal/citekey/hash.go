package citekey

import "hash/crc32"

// Alphabets for the citekey hash suffix. The first suffix character is
// drawn from a source-specific table and the second from the lowercase
// alphabet, so a title-derived suffix can never equal a DOI-derived one.
const (
	lowercase     = "abcdefghijklmnopqrstuvwxyz"
	titleSuffixes = "tuvw"
	doiSuffixes   = "bcdefghijk"
)

// CRC returns the CRC-32 checksum of the UTF-8 encoding of text,
// interpreted as unsigned. The polynomial is ISO-HDLC (the one zlib
// uses), so checksums match other citekey implementations byte for byte.
func CRC(text string) uint32 {
	return crc32.ChecksumIEEE([]byte(text))
}

// Hash maps text onto a two-character suffix drawn from the given
// suffix table and the lowercase alphabet. The checksum is reduced
// modulo 26*len(suffixes); the quotient picks the first character, the
// remainder the second. Deterministic, not injective: the suffix space
// is deliberately small.
func Hash(text, suffixes string) string {
	n := CRC(text) % uint32(len(lowercase)*len(suffixes))
	return string([]byte{
		suffixes[n/uint32(len(lowercase))],
		lowercase[n%uint32(len(lowercase))],
	})
}

// TitleHash returns the title-derived hash suffix (first character in
// t..w). Reports false when the title is empty.
func TitleHash(title string) (string, bool) {
	if title == "" {
		return "", false
	}
	return Hash(title, titleSuffixes), true
}

// DOIHash returns the DOI-derived hash suffix (first character in
// b..k). Reports false when the DOI is empty.
func DOIHash(doi string) (string, bool) {
	if doi == "" {
		return "", false
	}
	return Hash(doi, doiSuffixes), true
}
