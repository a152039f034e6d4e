package parse

// itemKey is the structural identity used to merge items found by the
// whole-document and per-page passes.
type itemKey struct {
	code  string
	desc  string
	qty   int
	rate  string
	value string
}

func keyOf(it LineItem) itemKey {
	return itemKey{
		code:  it.ItemCode,
		desc:  it.Description,
		qty:   it.Quantity,
		rate:  it.Rate,
		value: it.Value,
	}
}

// AggregateItems parses the item table once over the whole-document line
// stream and once independently per page, merges both result sets dropping
// exact structural duplicates, and renumbers survivors 1..N in
// first-encounter order. The per-page passes recover rows whose header-less
// continuation spans a page boundary that the whole-document pass missed.
func AggregateItems(pages []RawPage) []LineItem {
	seen := make(map[itemKey]struct{})
	var merged []LineItem

	add := func(items []LineItem) {
		for _, it := range items {
			k := keyOf(it)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			merged = append(merged, it)
		}
	}

	var all []string
	for _, p := range pages {
		all = append(all, p.Lines...)
	}
	add(ParsePageItems(all))

	for _, p := range pages {
		add(ParsePageItems(p.Lines))
	}

	for i := range merged {
		merged[i].SequenceNumber = i + 1
	}
	return merged
}
