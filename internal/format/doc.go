// Package format contains the split-policy rules: one builder per
// syntax construct, translating the syntax tree into the document model
// rendered by internal/layout. Rules decide which groups exist and
// where breaks and trailing commas go; they never look at widths.
package format
