// Package shared provides secure memory wiping for sensitive input.
package shared

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Used to drop plaintext passwords from memory once they are hashed.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
