// Package document loads and saves the key-value documents that i18nsync
// reconciles. JSON and YAML files are decoded into ordered reconcile.Tree
// values so that the output keeps the reading order of its sources, and
// encoded back with two-space indentation and unescaped non-ASCII text.
package document
