package richtext

import "strconv"

// rootPath is the locator of the document itself.
const rootPath = "content"

func indexPath(prefix string, i int) string {
	return prefix + "[" + strconv.Itoa(i) + "]"
}
