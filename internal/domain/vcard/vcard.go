// Package vcard renders business cards as vCard 3.0 contact files.
//
// Values are written verbatim: commas, semicolons and newlines are not
// escaped, so output stays byte-compatible with cards exported before.
package vcard

import (
	"regexp"
	"strings"
)

const (
	// MediaType is the content type of a serialized card.
	MediaType = "text/vcard"
	// Extension is appended to generated file names.
	Extension = ".vcf"

	fallbackFileName = "contact" + Extension
	lineSeparator    = "\r\n"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Contact is the subset of a card that is exported.
type Contact struct {
	BusinessName        string
	BusinessDescription string
	PhoneNumber         string
	Email               string
	Address             string
	Website             string
}

// Serialize renders the contact. Optional NOTE and URL lines are emitted only
// when non-empty; required fields always produce a line, possibly with an empty value.
func Serialize(c Contact) string {
	lines := make([]string, 0, 10)
	lines = append(lines,
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:"+c.BusinessName,
		"ORG:"+c.BusinessName,
	)
	if c.BusinessDescription != "" {
		lines = append(lines, "NOTE:"+c.BusinessDescription)
	}
	lines = append(lines,
		"TEL;TYPE=work,voice:"+c.PhoneNumber,
		"EMAIL;TYPE=work:"+c.Email,
		"ADR;TYPE=work:;;"+c.Address,
	)
	if c.Website != "" {
		lines = append(lines, "URL:"+c.Website)
	}
	lines = append(lines, "END:VCARD")

	return strings.Join(lines, lineSeparator)
}

// FileName derives the download name from the business name: whitespace runs
// become a single underscore and the .vcf extension is appended.
func FileName(businessName string) string {
	base := whitespaceRun.ReplaceAllString(businessName, "_")
	if base == "" {
		return fallbackFileName
	}

	return base + Extension
}
