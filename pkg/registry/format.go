package registry

import (
	"fmt"

	"github.com/arthur-debert/catcher/pkg/exc"
)

// Format builds the default diagnostic line for an uncaught exception.
// Pure function, fixed template; the bridge's default catch-all prints it.
func Format(e *exc.Exception) string {
	return fmt.Sprintf(`Uncaught exception %s: "%s" [File %s | Line %d]`,
		e.Type, e.Message, e.File, e.Line)
}
