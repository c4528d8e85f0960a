package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed wordlist.txt
var FS embed.FS

// WordLines returns the raw lines of the embedded word list, comments and
// blank lines stripped.
func WordLines() ([]string, error) {
	f, err := FS.Open("wordlist.txt")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}
