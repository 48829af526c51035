package winreg

import "golang.org/x/sys/windows/registry"

type regKey struct {
	k registry.Key
}

// OpenCurrentUser opens HKEY_CURRENT_USER\path with query access.
func OpenCurrentUser(path string) (Key, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, path, registry.QUERY_VALUE)
	if err != nil {
		return nil, err
	}
	return regKey{k: k}, nil
}

func (r regKey) DWORD(name string) (uint32, bool) {
	v, typ, err := r.k.GetIntegerValue(name)
	if err != nil || typ != registry.DWORD {
		return 0, false
	}
	return uint32(v), true
}

func (r regKey) Close() error { return r.k.Close() }
