// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug builds and checks the URL-safe keys that name pages and
// practice area anchors.
package slug

import "strings"

// MaxLen bounds the length of a page key.
const MaxLen = 64

// Generate lowercases s, keeps ASCII letters and digits, and joins the
// remaining words with single hyphens.
// Example: "Family & Divorce Law" becomes "family-divorce-law".
func Generate(s string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_' || r == '\t':
			pendingHyphen = true
		}
	}
	return b.String()
}

// Valid reports whether key is already in slug form and short enough to
// name a page.
func Valid(key string) bool {
	return key != "" && len(key) <= MaxLen && Generate(key) == key
}
