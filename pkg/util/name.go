package util

import "strings"

// DisplayNameFromEmail derives a display name from the local part of an
// email address: "sherry@demo.com" becomes "Sherry".
func DisplayNameFromEmail(email string) string {
	local, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	if local == "" {
		return "User"
	}
	return strings.ToUpper(local[:1]) + strings.ToLower(local[1:])
}

// NormalizeEmail lowercases and trims an email address. Email is the natural
// key for accounts and distributor profiles; every lookup goes through this.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail performs the same minimal shape check the console applies
// before a login or signup attempt.
func IsValidEmail(email string) bool {
	e := strings.TrimSpace(email)
	if strings.Count(e, "@") != 1 {
		return false
	}
	at := strings.IndexByte(e, '@')
	if at < 1 || at == len(e)-1 {
		return false
	}
	domain := e[at+1:]
	dot := strings.LastIndexByte(domain, '.')
	if dot < 1 || dot == len(domain)-1 {
		return false
	}
	return !strings.ContainsAny(e, " \t")
}
