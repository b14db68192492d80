package ogpress

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Shell is the compiled HTML document every post page is built from. It holds
// the byte span of its single <title> element; everything outside that span is
// copied into each page verbatim.
type Shell struct {
	doc        []byte
	titleStart int
	titleEnd   int
}

// LoadShell reads and parses the compiled HTML shell at path.
func LoadShell(path string) (*Shell, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v (run the site build first)", ErrTemplateMissing, path, err)
	}
	return ParseShell(doc)
}

// ParseShell locates the <title> element of doc. Title elements inside inline
// SVG or MathML are not document titles and are ignored.
func ParseShell(doc []byte) (*Shell, error) {
	z := html.NewTokenizer(bytes.NewReader(doc))
	var (
		offset  int
		foreign int
		count   int
		inTitle bool
		start   int
		end     int
	)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if z.Err() == io.EOF {
				break
			}
			return nil, fmt.Errorf("tokenize template: %w", z.Err())
		}
		tokStart := offset
		offset += len(z.Raw())

		name, _ := z.TagName()
		a := atom.Lookup(name)
		switch tt {
		case html.StartTagToken:
			switch {
			case a == atom.Svg || a == atom.Math:
				foreign++
			case a == atom.Title && foreign == 0:
				count++
				inTitle = true
				if count == 1 {
					start = tokStart
				}
			}
		case html.SelfClosingTagToken:
			if a == atom.Title && foreign == 0 {
				count++
				if count == 1 {
					start, end = tokStart, offset
				}
			}
		case html.EndTagToken:
			switch {
			case (a == atom.Svg || a == atom.Math) && foreign > 0:
				foreign--
			case a == atom.Title && inTitle:
				inTitle = false
				if count == 1 {
					end = offset
				}
			}
		}
	}

	switch {
	case count == 0:
		return nil, ErrNoTitle
	case count > 1:
		return nil, fmt.Errorf("%w (found %d)", ErrMultipleTitles, count)
	case end == 0:
		return nil, fmt.Errorf("%w: unterminated <title>", ErrNoTitle)
	}
	return &Shell{doc: doc, titleStart: start, titleEnd: end}, nil
}

// Title returns the raw bytes of the shell's <title> element.
func (s *Shell) Title() []byte {
	return s.doc[s.titleStart:s.titleEnd]
}

// Render returns a new document with the <title> element replaced by fragment.
func (s *Shell) Render(fragment []byte) []byte {
	out := make([]byte, 0, len(s.doc)-(s.titleEnd-s.titleStart)+len(fragment))
	out = append(out, s.doc[:s.titleStart]...)
	out = append(out, fragment...)
	out = append(out, s.doc[s.titleEnd:]...)
	return out
}
