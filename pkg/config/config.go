package config

import "time"

// Config is the read surface the rest of the binary sees. Every accessor
// takes a default so callers never branch on missing keys.
type Config interface {
	Bool(k string, def bool) bool
	Duration(k string, def time.Duration) time.Duration
	String(k string, def string) string
	Int(k string, def int) int
	StringSlice(k string, def []string) []string
	Unmarshal(k string, val any) error
	Contains(k string) bool
}
