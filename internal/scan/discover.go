package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

// chapterPattern matches GoPro chapter files: GH<chapter><video>.MP4 with a
// two-digit chapter number and a four-digit video id.
var chapterPattern = regexp.MustCompile(`^GH([0-9]{2})([0-9]{4})\.MP4$`)

// Video is one chaptered GoPro recording: the four-digit id, the highest
// chapter number seen, and the directory holding the chapter files.
type Video struct {
	ID       int
	Chapters int
	Dir      string
}

// ChapterPaths returns the chapter file paths of the video in playback order.
func (v Video) ChapterPaths() []string {
	paths := make([]string, v.Chapters)
	for chapter := 1; chapter <= v.Chapters; chapter++ {
		paths[chapter-1] = filepath.Join(v.Dir, fmt.Sprintf("GH%02d%04d.MP4", chapter, v.ID))
	}
	return paths
}

// GeojsonName returns the geojson file name the video's track is stored
// under.
func (v Video) GeojsonName() string {
	return fmt.Sprintf("%04d.geojson", v.ID)
}

// DiscoverVideos walks root recursively and groups GoPro chapter files into
// videos, ordered by video id. A video's chapter count is the highest chapter
// number found for its id, so a missing middle chapter surfaces later as a
// failed extraction rather than a silently shorter video.
func DiscoverVideos(root string) ([]Video, error) {
	found := make(map[int]*Video)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		m := chapterPattern.FindStringSubmatch(d.Name())
		if m == nil {
			return nil
		}

		chapter, _ := strconv.Atoi(m[1])
		videoID, _ := strconv.Atoi(m[2])

		v, ok := found[videoID]
		if !ok {
			found[videoID] = &Video{ID: videoID, Chapters: chapter, Dir: filepath.Dir(path)}
			return nil
		}
		if chapter > v.Chapters {
			v.Chapters = chapter
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	videos := make([]Video, 0, len(found))
	for _, v := range found {
		videos = append(videos, *v)
	}
	sort.Slice(videos, func(i, j int) bool { return videos[i].ID < videos[j].ID })
	return videos, nil
}
