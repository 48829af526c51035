//go:build !windows

package winreg

// OpenCurrentUser always fails off Windows.
func OpenCurrentUser(string) (Key, error) { return nil, ErrUnsupported }
