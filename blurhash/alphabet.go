package blurhash

import "fmt"

// alphabet is the 83-character base-83 symbol table used by the hash
// string grammar (spec's external interface, §6). Digit value == index.
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz#$%*+,-.:;=?@[]^_{|}~"

var base83Index [256]int8

func init() {
	for i := range base83Index {
		base83Index[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		base83Index[alphabet[i]] = int8(i)
	}
}

// encodeBase83 packs value as a fixed-width base-83 string of length
// chars, most significant digit first. Fails with ErrValueTooLarge
// when value >= 83^length.
func encodeBase83(value, length int) (string, error) {
	limit := 1
	for i := 0; i < length; i++ {
		limit *= 83
	}
	if value < 0 || value >= limit {
		return "", fmt.Errorf("%w: value %d does not fit in %d base83 digits", ErrValueTooLarge, value, length)
	}
	buf := make([]byte, length)
	for i := length - 1; i >= 0; i-- {
		buf[i] = alphabet[value%83]
		value /= 83
	}
	return string(buf), nil
}

// decodeBase83 unpacks a base-83 string into its non-negative integer
// value, most significant digit first. Fails with ErrInvalidCharacter
// on any byte outside the alphabet.
func decodeBase83(s string) (int, error) {
	acc := 0
	for i := 0; i < len(s); i++ {
		d := base83Index[s[i]]
		if d < 0 {
			return 0, fmt.Errorf("%w: byte %q at offset %d", ErrInvalidCharacter, s[i], i)
		}
		acc = acc*83 + int(d)
	}
	return acc, nil
}
