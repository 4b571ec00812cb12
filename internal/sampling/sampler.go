package sampling

import (
	"math/rand"
)

// Draw records the outcome of one category draw.
type Draw struct {
	Category  string
	Requested int
	Available int
	Taken     int
}

// Short reports whether the draw returned fewer items than requested.
func (d Draw) Short() bool {
	return d.Taken < d.Requested
}

// Sample draws n items without replacement using the given seed. When n is
// at least the population size, a copy of the whole population is returned
// in input order. The draw is deterministic for a given population, n and
// seed.
func Sample[T any](items []T, n int, seed int64) []T {
	if n >= len(items) {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
	rng := rand.New(rand.NewSource(seed))
	picked := rng.Perm(len(items))[:n]
	out := make([]T, 0, n)
	for _, idx := range picked {
		out = append(out, items[idx])
	}
	return out
}

// PerCategory draws up to n items for each category, keyed by key, and
// returns the selections concatenated in the order categories lists them.
// Items whose key matches no listed category are ignored. Every category
// draw seeds a fresh generator with the same seed, so each category's
// selection depends only on its own pool, n and the seed; adding or
// removing one category never changes another's draw. Categories with n or
// fewer items contribute everything they have, recorded as a short Draw.
func PerCategory[T any](items []T, key func(T) string, categories []string, n int, seed int64) ([]T, []Draw) {
	pools := make(map[string][]T, len(categories))
	listed := make(map[string]bool, len(categories))
	for _, category := range categories {
		listed[category] = true
	}
	for _, item := range items {
		k := key(item)
		if listed[k] {
			pools[k] = append(pools[k], item)
		}
	}

	var selected []T
	draws := make([]Draw, 0, len(categories))
	for _, category := range categories {
		pool := pools[category]
		draw := Draw{Category: category, Requested: n, Available: len(pool)}
		if len(pool) <= n {
			selected = append(selected, pool...)
			draw.Taken = len(pool)
		} else {
			rng := rand.New(rand.NewSource(seed))
			for _, idx := range rng.Perm(len(pool))[:n] {
				selected = append(selected, pool[idx])
			}
			draw.Taken = n
		}
		draws = append(draws, draw)
	}
	return selected, draws
}
