// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cipher implements the Caesar substitution cipher and the text
// statistics reported alongside every transformation.
//
// Only ASCII letters are rotated. Digits, punctuation, whitespace and every
// non-ASCII rune pass through untouched, so the output always has the same
// number of runes as the input.
//
// All functions are pure and safe for concurrent use.
package cipher
