// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// suggestCommand returns the name of the closest matching subcommand to
// the unknown input, or "" if nothing is close enough. "Close enough"
// means an edit distance of at most 3, which catches common typos
// (transpositions, dropped characters, extra characters).
func suggestCommand(unknown string, commands []*Command) string {
	names := make([]string, 0, len(commands))
	for _, command := range commands {
		names = append(names, command.Name)
	}
	return closest(unknown, names)
}

// suggestFlag looks at the args for the first unrecognized flag and returns
// the closest defined flag name with its "--" prefix. Returns "" if no
// good suggestion is found.
func suggestFlag(args []string, flagSet *pflag.FlagSet) string {
	var defined []string
	flagSet.VisitAll(func(f *pflag.Flag) {
		defined = append(defined, f.Name)
	})

	for _, arg := range args {
		if arg == "--" {
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			continue
		}

		name := strings.TrimLeft(arg, "-")
		if index := strings.IndexByte(name, '='); index >= 0 {
			name = name[:index]
		}

		if flagSet.Lookup(name) != nil {
			continue
		}
		if len(name) == 1 && flagSet.ShorthandLookup(name) != nil {
			continue
		}

		if best := closest(name, defined); best != "" {
			return "--" + best
		}

		// Only check the first unrecognized flag.
		break
	}

	return ""
}

// closest returns the candidate with the smallest edit distance to
// input, if that distance is at most 3.
func closest(input string, candidates []string) string {
	bestName := ""
	bestDistance := 4

	for _, candidate := range candidates {
		distance := levenshtein(input, candidate)
		if distance < bestDistance {
			bestDistance = distance
			bestName = candidate
		}
	}
	return bestName
}

// levenshtein returns the edit distance between a and b counted in
// runes: the fewest insertions, deletions and substitutions that turn
// one into the other. Transpositions cost two.
func levenshtein(a, b string) int {
	source, target := []rune(a), []rune(b)
	if len(source) > len(target) {
		source, target = target, source
	}
	if len(source) == 0 {
		return len(target)
	}

	// row[i] holds the distance from source[:i] to the target prefix
	// processed so far.
	row := make([]int, len(source)+1)
	for i := range row {
		row[i] = i
	}

	for _, targetRune := range target {
		diagonal := row[0]
		row[0]++
		for i, sourceRune := range source {
			above := row[i+1]
			substitution := diagonal
			if sourceRune != targetRune {
				substitution++
			}
			row[i+1] = min(above+1, row[i]+1, substitution)
			diagonal = above
		}
	}
	return row[len(source)]
}
