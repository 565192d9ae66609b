package compdb

// Merge folds a batch of newly observed entries into an existing database.
//
// The batch deduplicates by file path: when several batch entries name the
// same file, the last one in batch order wins. Existing entries whose path
// appears in the batch are superseded and removed; all other existing
// entries survive unchanged, in their original order. The surviving batch
// entries are appended in first-seen batch order.
//
// The output is fully determined by the input sequences, so re-merging the
// same batch into its own result reproduces that result exactly.
func Merge(existing, batch []Entry) []Entry {
	if len(batch) == 0 {
		return existing
	}

	// Last entry for a path wins; first-seen order fixes the output order.
	latest := make(map[string]Entry, len(batch))
	order := make([]string, 0, len(batch))
	for _, e := range batch {
		if _, seen := latest[e.File]; !seen {
			order = append(order, e.File)
		}
		latest[e.File] = e
	}

	merged := make([]Entry, 0, len(existing)+len(order))
	for _, e := range existing {
		if _, superseded := latest[e.File]; !superseded {
			merged = append(merged, e)
		}
	}
	for _, file := range order {
		merged = append(merged, latest[file])
	}

	return merged
}
