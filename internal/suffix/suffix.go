// Package suffix maintains the canonical set of output-filename suffixes
// and the helpers that manipulate them.
//
// KnownSuffixes is the list the rest of the tooling relies on. It is
// generated by Combine from the last discovery run's results
// (calculatedSuffixes) plus SuffixesToAdd, minus SuffixesToDiscard. To
// update KnownSuffixes, adjust the correction sets as necessary and refresh
// calculatedSuffixes from the discovery output.
package suffix

import (
	"regexp"
	"sort"
	"strings"
)

// Set is a set of lowercase suffix strings.
type Set map[string]struct{}

// NewSet builds a Set from the given items.
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Add inserts an item into the set.
func (s Set) Add(item string) { s[item] = struct{}{} }

// Has reports whether the set contains the item.
func (s Set) Has(item string) bool {
	_, ok := s[item]
	return ok
}

// Sorted returns the set's elements as a sorted slice.
func (s Set) Sorted() []string {
	items := make([]string, 0, len(s))
	for item := range s {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}

// SuffixesToAdd are suffixes that are hard-coded or otherwise have to
// exist. Aggregation adds them to whatever discovery produces.
var SuffixesToAdd = []string{
	"ami", "amiavg", "aminorm",
	"blot", "bsub", "bsubints",
	"c1d", "cal", "calints", "cat", "crf", "crfints",
	"dark",
	"i2d",
	"median",
	"phot", "psf-amiavg", "psfalign", "psfstack", "psfsub",
	"ramp", "rate", "rateints",
	"s2d", "s3d", "snr",
	"uncal",
	"wfscmb", "whtlt",
	"x1d", "x1dints",
}

// SuffixesToDiscard are strings discovery finds that are not to be
// considered suffixes. Aggregation removes them from the result.
var SuffixesToDiscard = []string{"functionwrapper", "systemcall"}

// Aggregate merges the two discovery sources into the final suffix set:
// the union of both, minus SuffixesToDiscard, plus SuffixesToAdd. The
// returned set is a fresh snapshot; re-aggregating it with an empty source
// yields the same set.
func Aggregate(fromSteps, fromConfigs Set) Set {
	out := make(Set, len(fromSteps)+len(fromConfigs)+len(SuffixesToAdd))
	for s := range fromSteps {
		out.Add(s)
	}
	for s := range fromConfigs {
		out.Add(s)
	}
	for _, s := range SuffixesToDiscard {
		delete(out, s)
	}
	for _, s := range SuffixesToAdd {
		out.Add(s)
	}
	return out
}

// Combine folds any number of sets to add and sets to remove into a single
// sorted list. It is the generator behind KnownSuffixes.
func Combine(toAdd []Set, toRemove []Set) []string {
	combined := make(Set)
	for _, set := range toAdd {
		for s := range set {
			combined.Add(s)
		}
	}
	for _, set := range toRemove {
		for s := range set {
			delete(combined, s)
		}
	}
	return combined.Sorted()
}

// KnownSuffixes is the canonical sorted suffix list. Only update it through
// Combine; modify SuffixesToAdd and SuffixesToDiscard to change the result.
var KnownSuffixes = Combine(
	[]Set{calculatedSuffixes, NewSet(SuffixesToAdd...)},
	[]Set{NewSet(SuffixesToDiscard...)},
)

// removeSuffixRe strips one known suffix, with its separator, from the end
// of a basename.
var removeSuffixRe = regexp.MustCompile(
	`^(?P<root>.+?)((?P<separator>_|-)(` + strings.Join(KnownSuffixes, "|") + `))?$`,
)

// RemoveSuffix removes the suffix from name if a known suffix is already
// present, returning the remaining root and the separator that preceded the
// suffix. The separator defaults to "_" when no suffix was found.
func RemoveSuffix(name string) (string, string) {
	root, separator := name, "_"
	m := removeSuffixRe.FindStringSubmatch(name)
	if m == nil {
		return root, separator
	}
	root = m[removeSuffixRe.SubexpIndex("root")]
	if sep := m[removeSuffixRe.SubexpIndex("separator")]; sep != "" {
		separator = sep
	}
	return root, separator
}

// ReplaceSuffix replaces any known suffix on name with newSuffix. The name
// is expected to be only the basename, with no extension.
func ReplaceSuffix(name, newSuffix string) string {
	root, separator := RemoveSuffix(name)
	return root + separator + newSuffix
}
