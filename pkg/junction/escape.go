package junction

import "strings"

// EscapeForCmd prepares a path for interpolation into a cmd.exe command
// line. Each run of ordinary characters is wrapped in double quotes, and
// the characters cmd.exe may reinterpret even inside quotes (percent for
// variable expansion, exclamation for delayed expansion) are prefixed
// with the caret escape outside the quoted runs.
//
// "C:\Temp 100% done!" becomes `"C:\Temp 100"^%" done"^!`.
func EscapeForCmd(path string) string {
	var out strings.Builder
	var run strings.Builder

	flush := func() {
		if run.Len() == 0 {
			return
		}
		out.WriteByte('"')
		out.WriteString(run.String())
		out.WriteByte('"')
		run.Reset()
	}

	for _, r := range path {
		if r == '%' || r == '!' {
			flush()
			out.WriteByte('^')
			out.WriteRune(r)
			continue
		}
		run.WriteRune(r)
	}
	flush()

	return out.String()
}
