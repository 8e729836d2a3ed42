package props

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/magiconair/properties"
)

// Load parses line oriented key=value text into a map.
//
// Every backslash is doubled before the text reaches the properties parser,
// so Windows style paths survive as literal data instead of being consumed as
// escape sequences. As a consequence a trailing backslash never continues a
// line. Lines may be of any length; "\r\n" endings are accepted.
func Load(r io.Reader) (map[string]string, error) {
	buf, err := escapeBackslashes(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read properties: %w", err)
	}
	return parse(buf)
}

// LoadFile opens path, loads it and closes it again.
func LoadFile(path string) (map[string]string, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, readError(path, err)
	}
	defer f.Close()

	buf, err := escapeBackslashes(f)
	if err != nil {
		return nil, readError(path, err)
	}

	entries, err := parse(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

func escapeBackslashes(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	err := eachLine(r, func(line string) {
		buf.WriteString(strings.ReplaceAll(line, `\`, `\\`))
		buf.WriteString("\n")
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func parse(buf []byte) (map[string]string, error) {
	loader := properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := loader.LoadBytes(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse properties: %w", err)
	}
	return p.Map(), nil
}

// openFile opens config files for reading.
var openFile = func(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// eachLine calls fn for every line of r without its line terminator. Unlike
// bufio.Scanner there is no limit on line length.
func eachLine(r io.Reader, fn func(line string)) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			fn(strings.TrimSuffix(line, "\r"))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
