package texture

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// atlasExts lists the image formats Decode understands, in lookup priority.
var atlasExts = map[string]int{
	".png":  0,
	".tga":  1,
	".bmp":  2,
	".jpg":  3,
	".jpeg": 3,
}

// Index maps lowercase atlas stems to filesystem paths.
// PNG wins over other formats for the same stem.
type Index struct {
	entries map[string]string
}

// BuildIndex scans dir and its subdirectories for atlas images.
func BuildIndex(dir string) (*Index, error) {
	idx := &Index{entries: make(map[string]string)}
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		prio, ok := atlasExts[ext]
		if !ok {
			return nil
		}
		stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
		if existing, exists := idx.entries[stem]; exists {
			if atlasExts[strings.ToLower(filepath.Ext(existing))] <= prio {
				return nil
			}
		}
		idx.entries[stem] = path
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("texture: index %s: %w", dir, err)
	}
	return idx, nil
}

// ResolvePath returns the path for an atlas name such as "walltext" or "walls/WallText.png".
func (idx *Index) ResolvePath(name string) (string, bool) {
	name = strings.ReplaceAll(name, "\\", "/")
	base := filepath.Base(name)
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	path, ok := idx.entries[stem]
	return path, ok
}

// Atlas resolves name and loads it with the given tile size.
func (idx *Index) Atlas(name string, size int) (*Atlas, error) {
	path, ok := idx.ResolvePath(name)
	if !ok {
		return nil, fmt.Errorf("texture: no atlas named %q", name)
	}
	return Load(path, size)
}

// Len returns the number of indexed atlases.
func (idx *Index) Len() int {
	return len(idx.entries)
}
