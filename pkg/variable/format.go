package variable

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// numberPrinter groups thousands and uses "." as decimal separator.
var numberPrinter = message.NewPrinter(language.English)

// FormatValue converts a resolved value to the text inserted in place of its marker.
// Floating-point values always carry two decimals (1234.5 -> "1,234.50");
// everything else uses its natural string form. nil becomes "".
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return numberPrinter.Sprintf("%.2f", val)
	case float32:
		return numberPrinter.Sprintf("%.2f", val)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case bool:
		return strconv.FormatBool(val)
	case fmt.Stringer:
		return val.String()
	case *string:
		if val == nil {
			return ""
		}
		return *val
	default:
		return fmt.Sprint(val)
	}
}
