package vietstock

import (
	"strings"

	"golang.org/x/net/html"
)

// AntiForgeryField is the hidden input carrying the request verification token
const AntiForgeryField = "__RequestVerificationToken"

// -----------------------------------------------------------------------------

// ExtractToken returns the value attribute of the first <input> whose name is
// field. found is false when no such input (or no value) exists.
func ExtractToken(page string, field string) (token string, found bool) {
	z := html.NewTokenizer(strings.NewReader(page))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or malformed markup
			return "", false

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "input" || !hasAttr {
				continue
			}

			var inputName, value string
			var hasValue bool
			for {
				key, val, more := z.TagAttr()
				switch string(key) {
				case "name":
					inputName = string(val)
				case "value":
					value, hasValue = string(val), true
				}
				if !more {
					break
				}
			}

			if inputName == field && hasValue {
				return value, true
			}
		}
	}
}
