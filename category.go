package zaplog

import "fmt"

// CategoryOf provides the category name for the provided value. Strings are
// used as is; anything else is named by its type.
func CategoryOf(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%T", v)
}
