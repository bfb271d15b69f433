package jmdict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityBucketOrdersNewsAboveNfDeciles(t *testing.T) {
	news1 := PriorityBucket([]string{"news1"})
	nf25 := PriorityBucket([]string{"nf25"})
	nf48 := PriorityBucket([]string{"nf48"})
	none := PriorityBucket(nil)

	assert.Less(t, news1, nf25)
	assert.Less(t, nf25, nf48)
	assert.Less(t, nf48, none)
	assert.Equal(t, NoPriorityBucket, none)
}

func TestPriorityBucketTakesBestTag(t *testing.T) {
	assert.Equal(t, PriorityBucket([]string{"gai2"}), PriorityBucket([]string{"nf25", "gai2"}))
	assert.Less(t, PriorityBucket([]string{"nf25", "ichi1"}), PriorityBucket([]string{"nf25"}))
}

func TestPriorityBucketIgnoresUnknownTags(t *testing.T) {
	assert.Equal(t, NoPriorityBucket, PriorityBucket([]string{"vulg", "uk"}))
}
