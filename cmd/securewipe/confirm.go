package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// confirmWipe requires the operator to type the exact word WIPE. The prompt
// goes to stderr so a JSON consumer on stdout never sees it.
func confirmWipe(path string) (bool, error) {
	fmt.Fprintln(os.Stderr, "WARNING: This will PERMANENTLY destroy all data on:")
	fmt.Fprintf(os.Stderr, "   %s\n", path)
	fmt.Fprintln(os.Stderr, "This operation CANNOT be undone!")
	fmt.Fprintln(os.Stderr)
	fmt.Fprint(os.Stderr, "Type 'WIPE' to confirm: ")

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return strings.TrimSpace(line) == "WIPE", nil
}
