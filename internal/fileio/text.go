package fileio

import (
	"bufio"
	"io"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// decodeReader sniffs the encoding and converts to UTF-8. UTF-8,
// Windows-1251 and Windows-1252 are supported out of the box.
func decodeReader(r io.Reader) io.Reader {
	br := bufio.NewReader(r)

	peek, _ := br.Peek(2048)
	cs := "utf-8"
	if len(peek) > 0 {
		if det, err := chardet.NewTextDetector().DetectBest(peek); err == nil && det != nil {
			cs = strings.ToLower(det.Charset)
		}
	}

	switch cs {
	case "windows-1251", "cp1251":
		return transform.NewReader(br, charmap.Windows1251.NewDecoder())
	case "windows-1252", "iso-8859-1":
		return transform.NewReader(br, charmap.Windows1252.NewDecoder())
	default:
		// assume UTF-8
		return br
	}
}

func readTXT(r io.Reader) (string, error) {
	b, err := io.ReadAll(decodeReader(r))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
