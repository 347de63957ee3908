package utils

// IsIn reports whether s occurs in l.
func IsIn(l []string, s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}
