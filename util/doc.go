// Package util provides generic utility functions for execkit packages.
//
// It includes slice operations, pointer helpers, map utilities, and small
// string helpers shared by the configuration and echo layers.
package util
