package scan

import (
	"os"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sortEntries orders entries by name using locale-aware collation,
// with the absolute path as tie-breaker so repeated scans of unchanged
// input always produce the same order.
func sortEntries(entries []Entry) {
	c := collate.New(collationLocale(), collate.IgnoreCase)
	sort.SliceStable(entries, func(i, j int) bool {
		if r := c.CompareString(entries[i].Name, entries[j].Name); r != 0 {
			return r < 0
		}
		return entries[i].Path < entries[j].Path
	})
}

// collationLocale derives the collation locale from the environment,
// honoring the usual precedence LC_ALL > LC_COLLATE > LANG.
func collationLocale() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
		v := os.Getenv(key)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		// Strip encoding and modifier suffixes: "de_AT.UTF-8@euro" -> "de_AT".
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		if tag, err := language.Parse(strings.ReplaceAll(v, "_", "-")); err == nil {
			return tag
		}
	}
	return language.Und
}
