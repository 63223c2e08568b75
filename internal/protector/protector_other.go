//go:build !openbsd

package protector

// Protect is a no-op on platforms without a pledge-style syscall filter.
func Protect() {}
