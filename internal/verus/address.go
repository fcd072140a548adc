package verus

const identityAddressLength = 34

// IsIdentityAddress reports whether addr looks like an identity address:
// base58, 34 characters, `i` prefix. Transparent addresses (`R...`) and
// anything malformed are rejected; the engine indexes identities only.
func IsIdentityAddress(addr string) bool {
	if len(addr) != identityAddressLength || addr[0] != 'i' {
		return false
	}
	for i := 1; i < len(addr); i++ {
		if !isBase58(addr[i]) {
			return false
		}
	}
	return true
}

func isBase58(c byte) bool {
	switch {
	case c >= '1' && c <= '9':
		return true
	case c >= 'A' && c <= 'Z':
		return c != 'I' && c != 'O'
	case c >= 'a' && c <= 'z':
		return c != 'l'
	default:
		return false
	}
}
