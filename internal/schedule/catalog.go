package schedule

import (
	"cmp"
	"strings"
)

// CompareCatalog orders catalog numbers by their leading integer and then
// lexically, so "110" < "110L" < "440" < "1000". Numbers without a leading
// integer sort after those with one.
func CompareCatalog(a, b string) int {
	na, ra, oka := leadingInt(a)
	nb, rb, okb := leadingInt(b)
	switch {
	case oka && !okb:
		return -1
	case !oka && okb:
		return 1
	case oka && okb:
		if c := cmp.Compare(na, nb); c != 0 {
			return c
		}
		return strings.Compare(ra, rb)
	default:
		return strings.Compare(a, b)
	}
}

// CompareSections orders sections by catalog number, subject, section code and id.
// It is the canonical ordering for stacked listings.
func CompareSections(a, b Section) int {
	if c := CompareCatalog(a.CatalogNumber, b.CatalogNumber); c != 0 {
		return c
	}
	if c := strings.Compare(a.Subject, b.Subject); c != 0 {
		return c
	}
	if c := strings.Compare(a.SectionCode, b.SectionCode); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

func leadingInt(s string) (n int, rest string, ok bool) {
	s = strings.TrimSpace(s)
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	return n, s[i:], i > 0
}
