package urlscan

// IsDomainSymbol reports whether c may appear in a domain token.
func IsDomainSymbol(c byte) bool {
	return isAlnum(c) || c == '.' || c == '-'
}

// IsPathSymbol reports whether c may appear in a path token.
func IsPathSymbol(c byte) bool {
	switch c {
	case '.', ',', '/', '+', '_':
		return true
	}
	return isAlnum(c)
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
