// Package windows provides Windows platform support using user32, the
// process table, and the built-in power management tools.
// On other operating systems the package compiles empty and
// platform.NewProvider reports ErrUnsupported.
package windows
