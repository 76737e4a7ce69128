// Package plugins pulls in every built-in algorithm package, triggering
// their self-registration, and applies the optional plugin manifest.
package plugins

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/maxslion/algod/pkg/algorithm"

	// Built-in algorithm packages register themselves at import time.
	_ "github.com/maxslion/algod/pkg/plugins/m01"
	_ "github.com/maxslion/algod/pkg/plugins/scm"
	_ "github.com/maxslion/algod/pkg/plugins/stm"
)

// Load applies the plugin manifest, if one is configured. The manifest
// lists one scheme code per line ('#' starts a comment); only listed codes
// stay enabled. An empty path leaves every registered scheme enabled.
func Load(manifestPath string) error {
	if manifestPath == "" {
		return nil
	}

	f, err := os.Open(manifestPath)
	if err != nil {
		return fmt.Errorf("failed to open plugin manifest: %w", err)
	}
	defer f.Close()

	var codes []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		codes = append(codes, line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read plugin manifest: %w", err)
	}

	algorithm.Restrict(codes)
	return nil
}
