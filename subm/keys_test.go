package subm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageFileName(t *testing.T) {
	assert.Equal(t, "image1.png", imageFileName(1, "image/png"))
	assert.Equal(t, "image2.jpeg", imageFileName(2, "image/jpeg"))
	assert.Equal(t, "image3.webp", imageFileName(3, "image/webp"))
	assert.Equal(t, "image1.bin", imageFileName(1, "image"))
}

func TestSortImageNamesByNumericSuffix(t *testing.T) {
	names := []string{"image10.png", "image2.jpg", "image1.webp"}
	sortImageNames(names)
	assert.Equal(t, []string{"image1.webp", "image2.jpg", "image10.png"}, names)
}

func TestIsImageFileName(t *testing.T) {
	assert.True(t, isImageFileName("image1.png"))
	assert.True(t, isImageFileName("IMAGE2.JPEG"))
	assert.False(t, isImageFileName("response.md"))
	assert.False(t, isImageFileName("image.png"))
	assert.False(t, isImageFileName("image1.pdf"))
}

func TestGroupResponseKeysNewestFirst(t *testing.T) {
	keys := []string{
		"responses/100/response.md",
		"responses/100/image1.png",
		"responses/99/response.md",
		"responses/meta.json",
		"responses/drafts/ignored.md",
		"unrelated/file.txt",
	}

	dirs := groupResponseKeys(keys)

	require.Len(t, dirs, 2)
	assert.Equal(t, int64(100), dirs[0].id)
	assert.ElementsMatch(t, []string{"response.md", "image1.png"}, dirs[0].files)
	assert.Equal(t, int64(99), dirs[1].id)
}

func TestManifestAppendEntry(t *testing.T) {
	base := manifestRow{
		Key:     manifestKey,
		Count:   2,
		Entries: []manifestEntry{{ID: 1}, {ID: 2}},
		Version: 7,
	}
	now := time.Unix(1700000000, 0)

	next, entry := base.appendEntry(WriteParams{
		Lang: "en",
		Images: []ImageFile{
			{ContentType: "image/png"},
			{ContentType: "image/jpeg"},
		},
	}, now)

	assert.Equal(t, 3, entry.ID)
	assert.Equal(t, []string{"image1.png", "image2.jpeg"}, entry.Images)
	assert.Equal(t, "en", entry.Lang)
	assert.Equal(t, now.Unix(), entry.CreatedAt)

	assert.Equal(t, 3, next.Count)
	require.Len(t, next.Entries, 3)
	assert.Equal(t, entry, next.Entries[2])

	// receiver must stay untouched
	assert.Equal(t, 2, base.Count)
	assert.Len(t, base.Entries, 2)
}
