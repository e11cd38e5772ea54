// core/meta/sanitize.go
package meta

import (
	"fmt"
	"strings"
	"time"
)

// bucketWidth is the age-bucket granularity used when redacting exact
// birth dates.
const bucketWidth = 10

// Sanitize returns a deep copy of fields with every key starting with
// "_" removed (recursively) and any parseable date_of_birth value
// replaced by its age bucket. The input map is never mutated and the
// result shares no containers with it.
func Sanitize(fields map[string]any) map[string]any {
	return sanitizeAt(fields, time.Now())
}

func sanitizeAt(fields map[string]any, now time.Time) map[string]any {
	out := make(map[string]any, len(fields))
	for key, value := range fields {
		if strings.HasPrefix(key, "_") {
			continue
		}
		if nested, ok := value.(map[string]any); ok {
			out[key] = sanitizeAt(nested, now)
			continue
		}
		if key == BirthDateKey {
			if s, ok := value.(string); ok {
				if birth, ok := ParseDate(s); ok {
					out[key] = AgeBucket(Age(birth, now))
					continue
				}
			}
		}
		out[key] = value
	}
	return out
}

// AgeBucket maps an age to its decade label, e.g. 46 -> "40-49".
func AgeBucket(age int) string {
	if age < 0 {
		age = 0
	}
	lo := (age / bucketWidth) * bucketWidth
	return fmt.Sprintf("%d-%d", lo, lo+bucketWidth-1)
}
