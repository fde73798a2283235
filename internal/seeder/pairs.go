package seeder

import (
	"fmt"
	"math/rand"
)

// samplePairs draws k distinct ordered pairs (a, b) with a != b from 1..n.
//
// The n*(n-1) valid pairs are indexed and a partial Fisher-Yates shuffle
// over that index space picks k of them, so it always finishes in k draws.
// Only the swapped slots are materialized.
func samplePairs(rnd *rand.Rand, n, k int) ([]Prerequisite, error) {
	if k < 0 {
		return nil, fmt.Errorf("invalid pair count: %d", k)
	}
	total := 0
	if n > 1 {
		total = n * (n - 1)
	}
	if k > total {
		return nil, fmt.Errorf("cannot draw %d distinct pairs from %d courses (only %d exist)", k, n, total)
	}

	swapped := make(map[int]int, k)
	slot := func(i int) int {
		if v, ok := swapped[i]; ok {
			return v
		}
		return i
	}

	pairs := make([]Prerequisite, 0, k)
	for i := 0; i < k; i++ {
		j := i + rnd.Intn(total-i)
		picked := slot(j)
		swapped[j] = slot(i)
		pairs = append(pairs, decodePair(picked, n))
	}
	return pairs, nil
}

func decodePair(idx, n int) Prerequisite {
	course := idx/(n-1) + 1
	prereq := idx%(n-1) + 1
	if prereq >= course {
		prereq++
	}
	return Prerequisite{CourseID: course, PrerequisiteID: prereq}
}
