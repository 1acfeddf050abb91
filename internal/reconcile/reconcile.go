package reconcile

import "fmt"

// Placeholder marks a reference key that has no translation yet. Downstream
// tooling searches for this exact text.
const Placeholder = "<TRANSLATE THIS>"

// Reconcile returns a new tree holding every path of reference. Leaves the
// translation already has keep the translated value; everything else gets
// Placeholder. Paths that only exist in translation are dropped, and the
// output follows the key order of reference.
//
// The reference decides the shape: a non-empty reference container always
// yields a container, and a translated container found where the reference
// has a leaf counts as untranslated. An empty reference container is a slot
// of its own: it stays empty when the translation has a container there and
// gets Placeholder otherwise.
func Reconcile(reference, translation *Tree) *Tree {
	refKeys := EnumerateKeys(reference)
	transKeys := EnumerateKeys(translation)

	result := New()
	for _, p := range refKeys.paths {
		refValue, err := ResolvePath(reference, p)
		if err != nil {
			panic(fmt.Sprintf("reconcile: enumerated reference path %q does not resolve: %v", p.String(), err))
		}

		var value any = Placeholder
		switch {
		case isTree(refValue) && refValue.(*Tree).Len() > 0:
			value = New()
		case transKeys.Contains(p):
			translated, err := ResolvePath(translation, p)
			if err != nil {
				panic(fmt.Sprintf("reconcile: enumerated translation path %q does not resolve: %v", p.String(), err))
			}
			switch {
			case isTree(refValue):
				if isTree(translated) {
					value = New()
				}
			case !isTree(translated):
				value = translated
			}
		}

		MergeInto(result, WrapAtPath(value, p))
	}

	return result
}

// Report summarizes how a translation relates to its reference at slot
// level, where a slot is a leaf or an empty container. All paths are in
// document order.
type Report struct {
	// Kept are reference slots that have a translated value
	Kept []Path
	// Missing are reference slots that will receive Placeholder
	Missing []Path
	// Dropped are translation slots the reference does not have
	Dropped []Path
}

// Complete reports whether every reference slot is translated
func (r Report) Complete() bool {
	return len(r.Missing) == 0
}

// Diff computes the Report for reference and translation. It agrees with
// Reconcile on which slots are kept and which receive the placeholder.
func Diff(reference, translation *Tree) Report {
	var report Report

	refSlots := newKeySet()
	for _, p := range slots(reference) {
		refSlots.add(p)
		refValue, _ := ResolvePath(reference, p)
		v, err := ResolvePath(translation, p)
		if err == nil && isTree(v) == isTree(refValue) {
			report.Kept = append(report.Kept, p)
		} else {
			report.Missing = append(report.Missing, p)
		}
	}

	for _, p := range slots(translation) {
		if !refSlots.Contains(p) {
			report.Dropped = append(report.Dropped, p)
		}
	}

	return report
}

// slots returns the leaves of t together with its empty containers
func slots(t *Tree) []Path {
	var out []Path
	for _, p := range EnumerateKeys(t).paths {
		v, _ := ResolvePath(t, p)
		if sub, ok := v.(*Tree); !ok || sub.Len() == 0 {
			out = append(out, p)
		}
	}
	return out
}
