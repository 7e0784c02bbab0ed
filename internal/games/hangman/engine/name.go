package engine

// ValidatePlayerName checks a nickname as typed: an English letter first,
// then only English letters and digits. Whitespace anywhere is invalid.
func ValidatePlayerName(name string) (string, error) {
	if name == "" || !isEnglishLetter(name[0]) {
		return "", &InvalidNameError{Name: name}
	}
	for i := 1; i < len(name); i++ {
		c := name[i]
		if !isEnglishLetter(c) && (c < '0' || c > '9') {
			return "", &InvalidNameError{Name: name}
		}
	}
	return name, nil
}

func isEnglishLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
