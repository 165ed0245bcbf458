package stringutils

import (
	"fmt"
	"strings"
)

// INClause builds the placeholder list and argument slice for a SQL IN
// clause, numbering placeholders from $1.
func INClause[T any](list []T) (placeholders []string, args []any) {
	placeholders = make([]string, len(list))
	args = make([]any, len(list))
	for i, id := range list {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	return placeholders, args
}

// FileExt returns the extension of a file name without the leading dot,
// or an empty string when the name carries none.
func FileExt(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return ""
	}
	return name[idx+1:]
}
