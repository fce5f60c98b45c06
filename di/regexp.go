package di

import (
	"regexp"
	"strings"
)

// specialTypePattern matches a whole-word occurrence of any special
// annotation marker inside a forward-reference annotation.
//
// Word boundaries matter: "Optional[str]" and "List[str]" match (Optional and
// List appear as isolated words), while "ListCustomClass" does not (List is
// only a prefix). Annotations that merely start with a marker-like prefix
// therefore stay eligible as custom class names.
var specialTypePattern = regexp.MustCompile(`\b(` + strings.Join(specialTypeNames, "|") + `)\b`)
