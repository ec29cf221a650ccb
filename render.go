package jsondec

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/jsondec/jsondec/jsonv"
)

// Render produces the diagnostic message for err: a breadcrumb such as
// json.a[2] pinpointing where in the tree the decode failed, the offending
// value pretty-printed, and the reason. The output is deterministic and is
// part of the package contract; Error() on every variant delegates here.
func Render(err DecodingError) string { return render(err, nil) }

func render(err DecodingError, breadcrumb []string) string {
	switch e := err.(type) {
	case *FieldError:
		name := e.Name
		if isSimpleName(name) {
			name = "." + name
		} else {
			name = "[" + name + "]"
		}
		return render(e.Err, append(breadcrumb, name))

	case *IndexError:
		return render(e.Err, append(breadcrumb, "["+strconv.Itoa(e.Index)+"]"))

	case *OneOfError:
		switch len(e.Errors) {
		case 0:
			// not constructible through OneOf; renderable for completeness
			if len(breadcrumb) == 0 {
				return "Ran into oneOf with no possibilities!"
			}
			return "Ran into oneOf with no possibilities at json" + strings.Join(breadcrumb, "")
		case 1:
			return render(e.Errors[0], breadcrumb)
		default:
			starter := "oneOf"
			if len(breadcrumb) > 0 {
				starter = "oneOf at json" + strings.Join(breadcrumb, "")
			}
			var b strings.Builder
			fmt.Fprintf(&b, "%s failed in the following %d ways:\n\n", starter, len(e.Errors))
			for i, sub := range e.Errors {
				// each alternative renders from a fresh breadcrumb
				fmt.Fprintf(&b, "\n\n(%d) %s", i+1, indent(Render(sub)))
				if i != len(e.Errors)-1 {
					b.WriteString("\n\n")
				}
			}
			return b.String()
		}

	case *Failure:
		intro := "Problem with the given value:\n\n"
		if len(breadcrumb) > 0 {
			intro = "Problem with the value at json" + strings.Join(breadcrumb, "") + ":\n\n    "
		}
		printed := jsonv.WriteString(e.Value, jsonv.WriteOpt{Indent: 4})
		return intro + indent(printed) + "\n\n" + e.Reason()

	default:
		// the variant set is sealed; unreachable
		return "unknown decoding error"
	}
}

func indent(s string) string {
	return strings.ReplaceAll(s, "\n", "\n    ")
}

// isSimpleName reports whether a field name can appear in dotted form: it
// must be non-empty, start with a letter and continue with letters or
// digits. Anything else is rendered bracketed.
func isSimpleName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
