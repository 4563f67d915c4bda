package annotate

import (
	"context"
	"sync"

	"github.com/matzehuels/depsize/pkg/manifest"
	"github.com/matzehuels/depsize/pkg/sizer"
)

// Pass executes one pipeline pass over a manifest buffer: parse, resolve
// each distinct lookup key concurrently, and group anchors by display
// string. Text that does not parse yields an empty group set, so callers
// rendering the result clear any labels painted by an earlier pass.
//
// The Coordinator calls this on every debounced cycle; the one-shot CLI
// command calls it directly.
func Pass(ctx context.Context, r *sizer.Resolver, dir, text string) map[string][]manifest.Position {
	res, _ := manifest.Parse(text)
	entries := res.Entries()

	// Coalesce duplicate lookup keys: one resolution per distinct key.
	keyed := make(map[string][]manifest.Entry)
	for _, e := range entries {
		key := r.Key(e, dir)
		keyed[key] = append(keyed[key], e)
	}

	// Fan out one lookup per key, fan in before grouping.
	displays := make(map[string]string, len(keyed))
	var dmu sync.Mutex
	var wg sync.WaitGroup
	for key, group := range keyed {
		wg.Add(1)
		go func(key string, e manifest.Entry) {
			defer wg.Done()
			d := r.Resolve(ctx, e, dir)
			dmu.Lock()
			displays[key] = d
			dmu.Unlock()
		}(key, group[0])
	}
	wg.Wait()

	// Group anchors by display string: every entry's anchor lands in
	// exactly one group.
	groups := make(map[string][]manifest.Position)
	for key, group := range keyed {
		d := displays[key]
		for _, e := range group {
			groups[d] = append(groups[d], e.Anchor)
		}
	}
	return groups
}
