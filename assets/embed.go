// assets/embed.go
//
// Embedded default word universe. Used whenever WORDS_FILE is not set.

package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed words.txt
var FS embed.FS

// ReadWords returns the lowercased, whitespace-separated words read from r,
// skipping blank lines and # comments.
func ReadWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		for _, w := range strings.Fields(s) {
			out = append(out, strings.ToLower(w))
		}
	}
	return out, sc.Err()
}

// UniverseList returns the embedded default word list.
func UniverseList() ([]string, error) {
	f, err := FS.Open("words.txt")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadWords(f)
}
