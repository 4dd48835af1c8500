package ui

import "github.com/vango-dev/aether/app/twmerge"

// CN joins class lists, dropping empty values. Use it when the classes are
// known not to conflict.
//
//	CN("flex gap-4", If(active, "opacity-100"))
func CN(values ...any) string {
	return twmerge.Join(values...)
}

// CNX merges class lists, resolving Tailwind conflicts so the last class of
// a group wins. It is the safe default when caller classes are involved.
//
//	CNX("text-sm p-4", "text-lg p-8") // "text-lg p-8"
func CNX(values ...any) string {
	return twmerge.Merge(values...)
}

// If returns class when cond holds and "" otherwise.
func If(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}
