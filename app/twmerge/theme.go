package twmerge

import (
	"strings"

	tw "github.com/Oudwins/tailwind-merge-go/pkg/twmerge"
)

// Theme tokens added by the aether Tailwind preset.
var (
	themeColors  = []string{"primary", "secondary", "accent"}
	themeSpacing = []string{"sm", "md", "lg"}
)

// Utilities that accept theme colors, keyed by class prefix.
var colorGroups = map[string]string{
	"bg":     "bg-color",
	"text":   "text-color",
	"border": "border-color",
	"ring":   "ring-color",
}

// Utilities that accept theme spacing. Prefix and group id coincide.
var spacingGroups = []string{
	"p", "px", "py", "ps", "pe", "pt", "pr", "pb", "pl",
	"m", "mx", "my", "ms", "me", "mt", "mr", "mb", "ml",
	"gap", "gap-x", "gap-y", "space-x", "space-y",
	"w", "h",
}

// newConfig returns the default tailwind-merge configuration extended with
// the aether theme and the pre-3.0 flex-grow/flex-shrink spellings.
func newConfig() *tw.TwMergeConfig {
	config := tw.MakeDefaultConfig()
	groups := &config.ClassGroups

	for prefix, group := range colorGroups {
		for _, c := range themeColors {
			extend(groups, group, prefix, "aether", c)
		}
	}
	for _, group := range spacingGroups {
		for _, s := range themeSpacing {
			extend(groups, group, strings.Split(group+"-aether-"+s, "-")...)
		}
	}
	for _, group := range []string{"grow", "shrink"} {
		extend(groups, group, "flex", group)
		extend(groups, group, "flex", group, "0")
	}

	return config
}

// extend registers the exact class formed by path under group.
func extend(root *tw.ClassPart, group string, path ...string) {
	*root = withPart(*root, group, path)
}

func withPart(part tw.ClassPart, group string, path []string) tw.ClassPart {
	if len(path) == 0 {
		part.ClassGroupId = group
		return part
	}
	if part.NextPart == nil {
		part.NextPart = make(map[string]tw.ClassPart)
	}
	part.NextPart[path[0]] = withPart(part.NextPart[path[0]], group, path[1:])
	return part
}
