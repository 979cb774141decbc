// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package files turns what a terminal delivers on drag-and-drop (a pasted run
// of quoted paths or file:// URIs) into file metadata the stager can judge.
package files

import (
	"net/url"
	"strings"

	"github.com/kballard/go-shellquote"
)

const fileScheme = "file://"

// SplitDropped splits text pasted into the drop zone into paths.
//
// Terminals quote dropped paths the way a shell would ('a b.png', a\ b.png)
// and some emit file:// URIs instead; both forms are understood. Text with
// unbalanced quotes is split on whitespace.
func SplitDropped(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	words, err := shellquote.Split(text)
	if err != nil {
		words = strings.Fields(text)
	}

	paths := make([]string, 0, len(words))
	for _, w := range words {
		if p := fromURI(w); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// fromURI decodes a file:// URI into a local path; other words pass through.
func fromURI(word string) string {
	if !strings.HasPrefix(strings.ToLower(word), fileScheme) {
		return word
	}

	u, err := url.Parse(word)
	if err != nil || u.Path == "" {
		return word[len(fileScheme):]
	}
	return u.Path
}
