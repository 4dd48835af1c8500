package twmerge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vango-dev/aether/app/twmerge"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		name     string
		values   []any
		expected string
	}{
		{"no arguments", nil, ""},
		{"falsy values skipped", []any{"a", false, "b", nil, "c", ""}, "a b c"},
		{"call order preserved", []any{"flex gap-4", "opacity-100"}, "flex gap-4 opacity-100"},
		{"no conflict resolution", []any{"p-4", "p-8"}, "p-4 p-8"},
		{"string slices flattened", []any{[]string{"a", "", "b"}, "c"}, "a b c"},
		{"unsupported types skipped", []any{"a", 42, true, struct{}{}, "b"}, "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, twmerge.Join(tt.values...))
		})
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		values   []any
		expected string
	}{
		// Basics
		{"later same group wins", []any{"bg-red-500", "bg-blue-500"}, "bg-blue-500"},
		{"winner at last position", []any{"p-4 text-sm", "p-8"}, "text-sm p-8"},
		{"empty", nil, ""},
		{"falsy values skipped", []any{"p-4", false, nil, "", "p-2"}, "p-2"},

		// Typography
		{"font size vs text color", []any{"text-sm text-red-500", "text-lg"}, "text-red-500 text-lg"},
		{"text color override", []any{"text-white", "text-black"}, "text-black"},
		{"text align", []any{"text-left text-sm", "text-center"}, "text-sm text-center"},
		{"font weight vs family", []any{"font-bold font-sans", "font-medium"}, "font-sans font-medium"},
		{"arbitrary font size", []any{"text-sm", "text-[14px]"}, "text-[14px]"},
		{"arbitrary color", []any{"text-red-500", "text-[#fff]"}, "text-[#fff]"},
		{"font size with line height postfix", []any{"text-sm", "text-lg/7"}, "text-lg/7"},

		// Spacing
		{"padding overrides axis", []any{"px-2 py-1", "p-4"}, "p-4"},
		{"axis does not override padding", []any{"p-4", "px-2"}, "p-4 px-2"},
		{"axis overrides side", []any{"pl-2 pt-1", "px-4"}, "pt-1 px-4"},
		{"negative margin", []any{"-mt-2", "mt-4"}, "mt-4"},
		{"theme spacing", []any{"p-aether-md", "p-aether-lg"}, "p-aether-lg"},
		{"theme spacing vs scale", []any{"px-aether-sm", "px-4"}, "px-4"},
		{"theme padding overrides axis", []any{"px-2 py-1", "p-aether-md"}, "p-aether-md"},
		{"gap overrides axes", []any{"gap-x-2 gap-y-4", "gap-8"}, "gap-8"},

		// Layout
		{"display", []any{"flex", "hidden"}, "hidden"},
		{"flex direction kept with display", []any{"flex flex-col", "flex-row"}, "flex flex-row"},
		{"flex keeps shrink", []any{"flex-1", "flex-shrink-0"}, "flex-1 flex-shrink-0"},
		{"flex keeps grow", []any{"flex-1", "flex-grow"}, "flex-1 flex-grow"},
		{"legacy shrink name", []any{"flex-shrink-0", "shrink"}, "shrink"},
		{"legacy grow name", []any{"grow-0", "flex-grow"}, "flex-grow"},
		{"position", []any{"relative", "absolute"}, "absolute"},
		{"inset overrides sides", []any{"top-0 left-0", "inset-2"}, "inset-2"},
		{"fraction width", []any{"w-1/2", "w-full"}, "w-full"},

		// Backgrounds and borders
		{"bg keyword vs color", []any{"bg-cover bg-red-500", "bg-blue-500"}, "bg-cover bg-blue-500"},
		{"bg opacity postfix", []any{"bg-red-500", "bg-red-500/50"}, "bg-red-500/50"},
		{"border width vs color", []any{"border border-red-500", "border-2"}, "border-red-500 border-2"},
		{"border side", []any{"border-t-2", "border-t-4"}, "border-t-4"},
		{"border overrides sides", []any{"border-t-2", "border-4"}, "border-4"},
		{"rounded overrides corners", []any{"rounded-tl-lg rounded-b", "rounded-md"}, "rounded-md"},
		{"rounded side overrides corner", []any{"rounded-tl-lg", "rounded-t-none"}, "rounded-t-none"},
		{"ring width vs color", []any{"ring-2 ring-blue-500", "ring-4"}, "ring-blue-500 ring-4"},
		{"bg opacity vs color", []any{"bg-red-500", "bg-opacity-50"}, "bg-red-500 bg-opacity-50"},
		{"text opacity vs color", []any{"text-red-500", "text-opacity-75"}, "text-red-500 text-opacity-75"},
		{"border opacity vs width and color", []any{"border border-red-500", "border-opacity-50"}, "border border-red-500 border-opacity-50"},
		{"decoration color vs thickness", []any{"decoration-red-500", "decoration-2"}, "decoration-red-500 decoration-2"},
		{"decoration style vs thickness", []any{"decoration-wavy decoration-2", "decoration-4"}, "decoration-wavy decoration-4"},
		{"theme color", []any{"bg-aether-primary text-white", "bg-aether-accent"}, "text-white bg-aether-accent"},
		{"theme color vs palette", []any{"bg-aether-primary", "bg-red-500"}, "bg-red-500"},
		{"shadow size vs color", []any{"shadow-lg shadow-red-500", "shadow-sm"}, "shadow-red-500 shadow-sm"},

		// Modifiers
		{"different modifiers do not conflict", []any{"bg-red-500 hover:bg-blue-500", "bg-green-500"}, "hover:bg-blue-500 bg-green-500"},
		{"same modifiers conflict", []any{"hover:bg-red-500", "hover:bg-blue-500"}, "hover:bg-blue-500"},
		{"modifier order ignored", []any{"hover:focus:p-2", "focus:hover:p-4"}, "focus:hover:p-4"},
		{"important scoped", []any{"!p-2 p-4", "p-8"}, "!p-2 p-8"},
		{"arbitrary variant", []any{"[&>*]:p-2", "[&>*]:p-4"}, "[&>*]:p-4"},

		// Unknown classes
		{"unknown classes kept in order", []any{"foo p-2 bar", "p-4 baz"}, "foo bar p-4 baz"},
		{"unknown duplicates kept", []any{"foo", "foo"}, "foo foo"},
		{"malformed passes through", []any{"p-", "[oops"}, "p- [oops"},
		{"inf is not a width", []any{"border-2", "border-inf"}, "border-2 border-inf"},
		{"nan is not a weight", []any{"font-bold", "font-nan", "font-medium"}, "font-nan font-medium"},
		{"pseudo numeric keeps position", []any{"p-2 m-nan p-4 border-inf"}, "m-nan p-4 border-inf"},
		{"whitespace normalized", []any{"  p-2\t\n m-1  "}, "p-2 m-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, twmerge.Merge(tt.values...))
		})
	}
}

func TestMergeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"p-4 text-sm p-8",
		"px-2 p-4 px-1 pt-3",
		"flex flex-col items-center gap-4 gap-x-2 hover:bg-red-500 bg-blue-500 hover:bg-green-500",
		"rounded-lg bg-blue-500 px-4 py-2 rounded-t-none w-24",
		"foo bar foo -mt-2 mt-4 !p-2 p-2 text-lg/7 text-sm",
		"border border-t-2 border-red-500 border-t-blue-500 ring-2 ring-offset-2",
	}

	for _, in := range inputs {
		once := twmerge.Merge(in)
		assert.Equal(t, once, twmerge.Merge(once), "input %q", in)
	}
}

func TestMergeOverridingArgument(t *testing.T) {
	a := "p-4 text-sm bg-red-500 rounded"
	b := "p-8 text-lg bg-blue-500 rounded-xl"

	assert.Equal(t, twmerge.Merge(a, b), twmerge.Merge(twmerge.Merge(a), b))
	assert.Equal(t, "p-8 text-lg bg-blue-500 rounded-xl", twmerge.Merge(a, b))
}

func FuzzMergeIdempotent(f *testing.F) {
	seeds := []string{
		"",
		"p-4 px-2 p-8",
		"hover:bg-red-500 bg-blue-500 hover:bg-green-500",
		"foo foo border-inf border-2",
		"!p-2 p-4 [&>*]:p-2 -mt-2 mt-4",
		"bg-aether-primary p-aether-md rounded-lg opacity-50",
		"flex-1 flex-shrink-0 shrink bg-opacity-50 bg-red-500/50",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, in string) {
		once := twmerge.Merge(in)
		assert.Equal(t, once, twmerge.Merge(once))
	})
}
