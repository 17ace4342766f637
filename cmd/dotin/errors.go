package dotin

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/dotin/pkg/errors"
	"github.com/arthur-debert/dotin/pkg/ui/styles"
)

// FormatError renders a command failure for stderr: the error code, the
// message, and the details sorted by key.
func FormatError(err error) string {
	var b strings.Builder

	code := errors.GetErrorCode(err)
	b.WriteString(styles.Render("Error", "Error:"))
	if code != errors.ErrUnknown {
		b.WriteString(" " + styles.Render("ErrorCode", string(code)))
	}
	b.WriteString(" " + errorMessage(err))

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("\n  %s: %v", k, details[k]))
	}
	return b.String()
}

// errorMessage drops the "[CODE] " prefix that DotinError adds, since the
// code is printed separately.
func errorMessage(err error) string {
	msg := err.Error()
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		msg = strings.TrimPrefix(msg, "["+string(code)+"] ")
	}
	return msg
}
