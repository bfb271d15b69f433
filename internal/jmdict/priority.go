package jmdict

import "strconv"

// NoPriorityBucket is PriorityBucket's result for a surface with no priority
// tags at all. Lower buckets sort first (more common); this is the last,
// least-common bucket.
const NoPriorityBucket uint8 = 7

// PriorityBucket collapses a JMdict priority-tag list (news1, ichi1, spec1,
// gai1, nf01..nf48, ...) into a small ordinal for ranking, aggregating the
// many distinct tags into the handful of buckets search actually orders by.
// The "1" tags (most common), the "2" tags, and the nf-decile tags each rank
// below the one before; a surface carrying several tags gets its best one.
func PriorityBucket(tags []string) uint8 {
	best := NoPriorityBucket
	for _, t := range tags {
		if b, ok := priorityTagBucket(t); ok && b < best {
			best = b
		}
	}
	return best
}

func priorityTagBucket(tag string) (uint8, bool) {
	switch tag {
	case "news1", "ichi1", "spec1", "gai1":
		return 0, true
	case "news2", "ichi2", "spec2", "gai2":
		return 1, true
	}
	if len(tag) == 4 && tag[:2] == "nf" {
		n, err := strconv.Atoi(tag[2:])
		if err != nil {
			return 0, false
		}
		bucket := 2 + uint8((n-1)/10)
		if bucket > NoPriorityBucket-1 {
			bucket = NoPriorityBucket - 1
		}
		return bucket, true
	}
	return 0, false
}
