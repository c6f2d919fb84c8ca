// Package help provides the About box handler.
package help
