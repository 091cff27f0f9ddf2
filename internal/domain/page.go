package domain

// PageKey names one of the pages the router swaps into the content container.
// Any other fragment is treated as an anchor id.
type PageKey string

const (
	PageHome     PageKey = "home"
	PageRegister PageKey = "register"
	PageDonate   PageKey = "donate"
)

// PageKeys lists every page in menu order.
var PageKeys = []PageKey{PageHome, PageRegister, PageDonate}

// ParsePageKey reports whether s names a page.
func ParsePageKey(s string) (PageKey, bool) {
	for _, k := range PageKeys {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}
