package util

import (
	"fmt"
	"sync/atomic"
)

var sequence uint64

// GenerateSequenceWithPrefix returns a process-wide monotonic id like
// "KO-000001".
func GenerateSequenceWithPrefix(prefix string) string {
	n := atomic.AddUint64(&sequence, 1)

	return fmt.Sprintf("%s-%06d", prefix, n)
}
