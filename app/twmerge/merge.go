package twmerge

import (
	"regexp"
	"strconv"
	"strings"

	tw "github.com/Oudwins/tailwind-merge-go/pkg/twmerge"
)

var merge = tw.CreateTwMerge(newConfig(), nil)

var decimal = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)$`)

// Merge joins the values like Join and then drops every class that is
// overridden by a later class of the same group and variant scope. Kept
// classes stay in their original relative order, so each winner sits at the
// position of its last occurrence. Unrecognized classes are always kept.
//
// Merge is idempotent: Merge(x) == Merge(Merge(x)).
func Merge(values ...any) string {
	tokens := strings.Fields(Join(values...))
	if len(tokens) == 0 {
		return ""
	}

	mergeable := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !pseudoNumeric(t) {
			mergeable = append(mergeable, t)
		}
	}
	if len(mergeable) == len(tokens) {
		return merge(strings.Join(tokens, " "))
	}

	// The merged list is a subsequence of mergeable. Matching from the end
	// pins duplicates to their last occurrence, which is the one kept.
	kept := strings.Fields(merge(strings.Join(mergeable, " ")))
	keep := make([]bool, len(tokens))
	k := len(kept) - 1
	for i := len(tokens) - 1; i >= 0; i-- {
		switch {
		case pseudoNumeric(tokens[i]):
			keep[i] = true
		case k >= 0 && tokens[i] == kept[k]:
			keep[i] = true
			k--
		}
	}

	var b strings.Builder
	for i, t := range tokens {
		if keep[i] {
			writeClass(&b, t)
		}
	}
	return b.String()
}

// pseudoNumeric reports whether a class carries a value segment that strconv
// reads as a float but Tailwind does not, such as border-inf or font-nan.
// Such classes are passed through untouched.
func pseudoNumeric(token string) bool {
	base := token
	if i := strings.LastIndexByte(base, ':'); i >= 0 {
		base = base[i+1:]
	}
	if strings.ContainsAny(base, "[]") {
		return false
	}
	base = strings.Trim(base, "!")
	if i := strings.IndexByte(base, '/'); i >= 0 {
		base = base[:i]
	}
	for _, seg := range strings.Split(base, "-") {
		if seg == "" || decimal.MatchString(seg) {
			continue
		}
		if _, err := strconv.ParseFloat(seg, 64); err == nil {
			return true
		}
	}
	return false
}
