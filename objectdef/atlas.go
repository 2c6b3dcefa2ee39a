package objectdef

import "fmt"

// buildAtlasIndex maps every image's source name to its atlas entry. The
// only validation is that the source attribute exists; coordinates are
// checked later, when an object actually refers to the entry.
func buildAtlasIndex(atlas atlasXML) (map[string]AtlasEntry, error) {
	index := make(map[string]AtlasEntry, len(atlas.Images))
	for _, img := range atlas.Images {
		if img.Source == "" {
			return nil, fmt.Errorf("%w: atlas %q contains an image without a source", ErrMissingAttribute, atlas.Name)
		}
		index[img.Source] = AtlasEntry{
			Source:    img.Source,
			AtlasName: atlas.Name,
			XPos:      img.XPos,
			YPos:      img.YPos,
			Width:     img.Width,
			Height:    img.Height,
		}
	}
	return index, nil
}
