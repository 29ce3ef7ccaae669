package common

// TerminatedStr ensures the given string is \x00 terminated as the C APIs expect
func TerminatedStr(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\x00' {
		return s + "\x00"
	}
	return s
}
