package console

import (
	"strconv"

	"go.uber.org/zap"
)

// toFields converts dir arguments to zap fields: "value" for a single
// argument, "value0", "value1", ... otherwise.
func toFields(args ...any) []zap.Field {
	if len(args) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(args))
	for i, a := range args {
		key := "value"
		if len(args) > 1 {
			key += strconv.Itoa(i)
		}
		out = append(out, zap.Any(key, a))
	}
	return out
}
