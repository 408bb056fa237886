package overlay

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFaceSource parses the bundled Go Regular font.
func DefaultFaceSource() (*text.GoTextFaceSource, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to parse overlay font: %w", err)
	}
	return s, nil
}
