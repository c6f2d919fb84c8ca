// Package view provides handlers for the Format and View menus.
package view
