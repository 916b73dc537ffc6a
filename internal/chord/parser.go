// SPDX-License-Identifier: Apache-2.0

package chord

import "strings"

// Split breaks a line of user input into chord-name tokens. Tokens are
// comma-separated; surrounding whitespace is trimmed and tokens that are
// empty after trimming are dropped. Split does not validate the names,
// that is the table's job.
func Split(input string) []string {
	var tokens []string
	for _, raw := range strings.Split(input, ",") {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}
