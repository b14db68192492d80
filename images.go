package ogpress

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	_ "golang.org/x/image/webp"
)

// ImageInfo holds the pixel dimensions of a post image. Zero values mean unknown.
type ImageInfo struct {
	Width  int
	Height int
}

// ImageProber reads the dimensions of site-relative images from the public
// asset directory. Results, including failures, are memoized per path.
type ImageProber struct {
	publicDir string

	mu    sync.Mutex
	cache map[string]probeResult
}

type probeResult struct {
	info ImageInfo
	err  error
}

// NewImageProber returns a prober rooted at publicDir. A nil prober (empty
// publicDir) reports every image as unknown.
func NewImageProber(publicDir string) *ImageProber {
	if publicDir == "" {
		return nil
	}
	return &ImageProber{publicDir: publicDir, cache: make(map[string]probeResult)}
}

// Probe returns the dimensions of the image referenced by ref. Absolute URLs are
// not fetched; they report unknown dimensions and no error.
func (p *ImageProber) Probe(ref string) (ImageInfo, error) {
	if p == nil || ref == "" || isAbsoluteURL(ref) {
		return ImageInfo{}, nil
	}
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}
	local := filepath.Join(p.publicDir, filepath.FromSlash(path.Clean("/"+ref)))

	p.mu.Lock()
	defer p.mu.Unlock()
	if r, ok := p.cache[local]; ok {
		return r.info, r.err
	}
	info, err := decodeImageConfig(local)
	p.cache[local] = probeResult{info: info, err: err}
	return info, err
}

func decodeImageConfig(name string) (ImageInfo, error) {
	f, err := os.Open(name)
	if err != nil {
		return ImageInfo{}, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("decode image %s: %w", name, err)
	}
	return ImageInfo{Width: cfg.Width, Height: cfg.Height}, nil
}
