package service

import (
	"sort"

	"listcompare-service/internal/compare/model"
)

// Compare runs the set algebra over two parsed lists and recovers the
// original-form representatives for each region. Pure function: same inputs,
// same Result, no shared state.
func Compare(a, b model.ParsedList, opt model.Options) model.Result {
	var interKeys, aOnlyKeys, bOnlyKeys []string
	for _, k := range a.Keys {
		if b.Has(k) {
			interKeys = append(interKeys, k)
		} else {
			aOnlyKeys = append(aOnlyKeys, k)
		}
	}
	for _, k := range b.Keys {
		if !a.Has(k) {
			bOnlyKeys = append(bOnlyKeys, k)
		}
	}
	unionSize := a.Size() + b.Size() - len(interKeys)

	// representatives come from the originating list: A for A-only and the
	// intersection, B for B-only, in first-appearance source order
	aOnly := represent(aOnlyKeys, a.Reps)
	inter := represent(interKeys, a.Reps)
	bOnly := represent(bOnlyKeys, b.Reps)

	if opt.Deduplicate {
		aOnly = dedup(aOnly)
		inter = dedup(inter)
		bOnly = dedup(bOnly)
	}
	if opt.SortResults {
		sort.Strings(aOnly)
		sort.Strings(inter)
		sort.Strings(bOnly)
	}

	return model.Result{
		AOnly:        aOnly,
		Intersection: inter,
		BOnly:        bOnly,
		Counts: model.Counts{
			AOnly:        len(aOnlyKeys),
			Intersection: len(interKeys),
			BOnly:        len(bOnlyKeys),
			Union:        unionSize,
		},
		Jaccard: jaccard(len(interKeys), unionSize),
		Overlap: overlap(len(interKeys), a.Size(), b.Size()),
		Opts:    opt,
	}
}

func represent(keys []string, reps map[string]string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, reps[k])
	}
	return out
}

// dedup collapses repeats preserving first-occurrence order. Recovery already
// yields one representative per key; this guards the case-sensitive mode where
// distinct cased forms are distinct keys.
func dedup(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}

// jaccard is |A∩B| / |A∪B|, pinned to 0 when both sets are empty.
func jaccard(inter, union int) float64 {
	if union == 0 {
		return 0.0
	}
	return float64(inter) / float64(union)
}

// overlap is |A∩B| / min(|A|,|B|), pinned to 0 when either set is empty.
func overlap(inter, sizeA, sizeB int) float64 {
	m := sizeA
	if sizeB < m {
		m = sizeB
	}
	if m == 0 {
		return 0.0
	}
	return float64(inter) / float64(m)
}
