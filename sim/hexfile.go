package sim

import (
	"os"
	"strconv"
	"strings"
)

// LoadHexFile populates array from initFile: one hex value per line,
// `//` starts a trailing comment, `_` digit separators are stripped,
// blank lines are skipped, and a line of the form `@ADDR` (hex) resets
// the write cursor to that address. Mirrors
// tools/rust-sim-runtime/src/runtime/utils.rs's `load_hex_file`.
func LoadHexFile(array []uint64, initFile string) error {
	raw, err := os.ReadFile(initFile)
	if err != nil {
		return err
	}
	idx := 0
	for _, line := range strings.Split(string(raw), "\n") {
		if at := strings.Index(line, "//"); at >= 0 {
			line = line[:at]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.ReplaceAll(line, "_", "")
		if stripped, ok := strings.CutPrefix(line, "@"); ok {
			addr, err := strconv.ParseUint(stripped, 16, 64)
			if err != nil {
				return err
			}
			idx = int(addr)
			continue
		}
		value, err := strconv.ParseUint(line, 16, 64)
		if err != nil {
			return err
		}
		if idx < len(array) {
			array[idx] = value
		}
		idx++
	}
	return nil
}
