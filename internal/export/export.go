// Package export renders the article collection into the downloadable text
// formats (CSV, XML, TXT) and the RSS 2.0 feed. Every formatter is a pure
// function over the full article sequence.
package export

import (
	"errors"
	"strings"
)

// utf8BOM prefixes the CSV and TXT exports so spreadsheet tools on Windows
// pick up the encoding.
const utf8BOM = "\uFEFF"

// Localized boolean tokens used by the CSV and TXT exports.
const (
	tokenYes = "نعم"
	tokenNo  = "لا"
)

// baseFilename is the attachment name stem shared by all download formats.
const baseFilename = "akhbar_al_youm"

// ErrUnsupportedFormat indicates a format name outside txt, csv, and xml.
// Handlers translate it to a client error, never a server fault.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// yesNo renders a boolean as the localized yes/no token.
func yesNo(b bool) string {
	if b {
		return tokenYes
	}
	return tokenNo
}

// escapeXML replaces the five XML-special characters with their entity
// equivalents. The ampersand must go first so already-escaped entities are
// not double-escaped out of order.
func escapeXML(s string) string {
	return xmlReplacer.Replace(s)
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&apos;",
	`"`, "&quot;",
)
