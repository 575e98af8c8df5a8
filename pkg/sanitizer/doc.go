// Package sanitizer cleans composed email HTML and derives its plain-text
// alternative using bluemonday policies.
package sanitizer
