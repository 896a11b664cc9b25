package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"path"
	"strings"
)

//go:embed sprites/*.png
var spritesFS embed.FS

// LoadImage decodes one embedded sprite by asset name ("floorLava") or
// file name ("sprites/floorLava.png").
func LoadImage(name string) (image.Image, error) {
	b, err := spritesFS.ReadFile(spritePath(name))
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", name, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	return img, nil
}

// Names lists every embedded sprite by asset name.
func Names() []string {
	entries, err := spritesFS.ReadDir("sprites")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".png"))
	}
	return out
}

func spritePath(name string) string {
	s := strings.TrimPrefix(path.Clean(strings.ReplaceAll(name, "\\", "/")), "assets/")
	s = strings.TrimPrefix(s, "sprites/")
	if !strings.HasSuffix(s, ".png") {
		s += ".png"
	}
	return "sprites/" + s
}
