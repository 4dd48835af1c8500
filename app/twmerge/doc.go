// Package twmerge joins and merges Tailwind utility class lists.
//
// Join is a plain concatenation that drops empty values. Merge resolves
// conflicts between utilities of the same group (padding, text color,
// border radius, ...) so that the class appearing last wins:
//
//	twmerge.Merge("p-4 text-sm", "p-8") // "text-sm p-8"
//	twmerge.Merge("px-2", "p-4")        // "p-4"
//	twmerge.Merge("p-4", "px-2")        // "p-4 px-2"
//
// Conflict groups come from tailwind-merge-go's default configuration,
// extended with the aether theme colors and spacing (bg-aether-primary,
// p-aether-md, ...). Classes outside that configuration are never dropped.
package twmerge
