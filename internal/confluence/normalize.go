package confluence

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// entityReplacer collapses the entity spellings Confluence rewrites
// storage bodies with, so that a freshly rendered body compares equal to
// what the server returns.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	" ", " ",
	"&oacute;", "ó",
	"&eacute;", "é",
	"&aacute;", "á",
	"&ndash;", "–",
	"&mdash;", "—",
	"&rsquo;", "’",
	"&lsquo;", "‘",
)

// NormalizeStorage canonicalizes a storage-format body for comparison.
// Used by UpdatePage to decide whether a write would be a no-op.
func NormalizeStorage(s string) string {
	return norm.NFC.String(strings.TrimSpace(entityReplacer.Replace(s)))
}
