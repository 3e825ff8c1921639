package models

import "strings"

// Application is one internship application as submitted through the form.
// Rows are insert-only; the portal never updates or deletes them.
type Application struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	Gender    string `json:"gender"`
	Whatsapp  string `json:"whatsapp"`
	Education string `json:"education"`
	Country   string `json:"country"`
	Linkedin  string `json:"linkedin"`
	// Domains holds the selected interest areas encoded with EncodeDomains.
	Domains string `json:"domains"`
}

// EncodeDomains joins the selected domains into the single stored column
// value. Order and duplicates are preserved exactly as submitted; an empty
// selection encodes to the empty string.
func EncodeDomains(domains []string) string {
	return strings.Join(domains, ",")
}

// DecodeDomains splits a stored domains value back into the selected list.
// It is the exact inverse of EncodeDomains for any non-empty selection.
func DecodeDomains(encoded string) []string {
	if encoded == "" {
		return nil
	}
	return strings.Split(encoded, ",")
}
