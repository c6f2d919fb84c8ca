// Package i18n translates user-visible strings.
//
// Message keys are the English text itself, written as fmt format strings
// ("Cannot find \"%s\""). A locale catalog is a YAML map from key to
// translation stored as <locales_dir>/<tag>.yaml; catalogs for a few
// languages are built in. Keys missing from a catalog print in English.
package i18n
