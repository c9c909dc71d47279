// Package dsl declares struct and enum type definitions through chained
// builders. Builders collect attribute errors silently and surface them at
// Build; a returned definition is always fully validated and immutable.
package dsl
