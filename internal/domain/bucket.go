// internal/domain/bucket.go
package domain

import "fmt"

type Bucket string

const (
	BucketNeeds  Bucket = "needs"
	BucketWants  Bucket = "wants"
	BucketFuture Bucket = "future"
)

// BucketOrder is the fixed enumeration order of the allocation buckets.
// Rebalancing hands rounding remainders out by position in this list, so
// changing it changes results.
var BucketOrder = [3]Bucket{BucketNeeds, BucketWants, BucketFuture}

func (b Bucket) Valid() bool {
	switch b {
	case BucketNeeds, BucketWants, BucketFuture:
		return true
	}
	return false
}

func ParseBucket(s string) (Bucket, error) {
	b := Bucket(s)
	if !b.Valid() {
		return "", fmt.Errorf("unknown bucket %q", s)
	}
	return b, nil
}
