package subm

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Storage layout, shared by both store modes:
//
//	responses/<id>/response.md
//	responses/<id>/image<N>.<ext>
const (
	responsesPrefix = "responses/"
	messageFileName = "response.md"
)

var imageFileRe = regexp.MustCompile(`(?i)^image(\d+)\.(jpg|jpeg|png|gif|webp)$`)

// imageExt derives the stored file extension from a declared MIME type,
// e.g. "image/png" -> "png".
func imageExt(contentType string) string {
	_, sub, found := strings.Cut(contentType, "/")
	if !found || sub == "" {
		return "bin"
	}
	return sub
}

// imageFileName names the pos-th accepted image (1-based).
func imageFileName(pos int, contentType string) string {
	return fmt.Sprintf("image%d.%s", pos, imageExt(contentType))
}

// isImageFileName reports whether name matches the stored image pattern.
func isImageFileName(name string) bool {
	return imageFileRe.MatchString(name)
}

// sortImageNames orders stored image names by their embedded numeric suffix,
// ascending, so that display order matches submission order.
func sortImageNames(names []string) {
	num := func(name string) int {
		m := imageFileRe.FindStringSubmatch(name)
		if m == nil {
			return 0
		}
		n, _ := strconv.Atoi(m[1])
		return n
	}
	sort.Slice(names, func(i, j int) bool {
		return num(names[i]) < num(names[j])
	})
}

type responseDir struct {
	id    int64
	files []string
}

// groupResponseKeys groups object keys of the form responses/<id>/<file> by
// their numeric directory name and returns the groups newest-first. Keys
// outside the layout (non-numeric directories, the manifest file) are
// ignored.
func groupResponseKeys(keys []string) []responseDir {
	byID := map[int64][]string{}
	for _, key := range keys {
		rest, found := strings.CutPrefix(key, responsesPrefix)
		if !found {
			continue
		}
		dir, file, found := strings.Cut(rest, "/")
		if !found || file == "" {
			continue
		}
		id, err := strconv.ParseInt(dir, 10, 64)
		if err != nil {
			continue
		}
		byID[id] = append(byID[id], file)
	}

	dirs := make([]responseDir, 0, len(byID))
	for id, files := range byID {
		dirs = append(dirs, responseDir{id: id, files: files})
	}
	sort.Slice(dirs, func(i, j int) bool {
		return dirs[i].id > dirs[j].id
	})
	return dirs
}

func responseKey(id string, file string) string {
	return responsesPrefix + id + "/" + file
}
