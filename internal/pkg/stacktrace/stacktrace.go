package stacktrace

import "strings"

// InternalPaths extracts the frames of a raw stack trace that point into this
// repository's internal packages, shortened to "internal/...:<line>".
func InternalPaths(stack []byte) []string {
	lines := strings.Split(string(stack), "\n")
	paths := make([]string, 0, len(lines))

	for i := 0; i < len(lines)-1; i++ {
		line := strings.TrimSpace(lines[i+1])
		if !strings.Contains(line, "/internal/") || !strings.Contains(line, ".go:") {
			continue
		}

		end := len(line)
		if idx := strings.Index(line, ".go:"); idx != -1 {
			if sp := strings.Index(line[idx:], " "); sp != -1 {
				end = idx + sp
			}
		}

		short := line[:end]
		if cut := strings.Index(short, "/internal/"); cut != -1 {
			paths = append(paths, short[cut+1:])
		}
	}

	return paths
}
