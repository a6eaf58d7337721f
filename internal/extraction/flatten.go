package extraction

import (
	"tubelist/internal/domain/consts"
	"tubelist/internal/models"
	"tubelist/internal/parsing"
)

// typePlaylist marks an entry as a tab container (Videos/Shorts/Live) rather
// than a direct video.
const typePlaylist = "playlist"

// channelInfo mirrors the top level of yt-dlp's flat channel dump.
type channelInfo struct {
	Channel  string      `json:"channel"`
	Uploader string      `json:"uploader"`
	Entries  []*rawEntry `json:"entries"`
}

// rawEntry is one node of the nested entry tree, decoded defensively: every
// field is optional and null entries may appear at any level.
type rawEntry struct {
	Type             string      `json:"_type"`
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	UploadDate       string      `json:"upload_date"`
	ReleaseTimestamp int64       `json:"release_timestamp"`
	Entries          []*rawEntry `json:"entries"`
}

// flattenEntries expands tab containers exactly one level deep, substituting
// their child entries in place. Children of a container are assumed to be
// genuine videos, never further containers. Null entries are skipped
// silently at both levels.
func flattenEntries(entries []*rawEntry) []*rawEntry {
	flat := make([]*rawEntry, 0, len(entries))

	for _, entry := range entries {
		if entry == nil {
			continue
		}

		if entry.Type == typePlaylist {
			for _, sub := range entry.Entries {
				if sub == nil {
					continue
				}
				flat = append(flat, sub)
			}
			continue
		}

		flat = append(flat, entry)
	}

	return flat
}

// toVideos converts flattened entries into video records. Entries without an
// ID are dropped: they cannot be addressed or linked.
func toVideos(entries []*rawEntry) []*models.Video {
	videos := make([]*models.Video, 0, len(entries))

	for _, entry := range entries {
		if entry.ID == "" {
			continue
		}

		videos = append(videos, &models.Video{
			ID:          entry.ID,
			Title:       entry.Title,
			Description: entry.Description,
			URL:         consts.WatchURLPrefix + entry.ID,
			UploadDate:  uploadDate(entry),
		})
	}

	return videos
}

// uploadDate resolves an entry's date: the upload date field first, then the
// release timestamp, then empty.
func uploadDate(e *rawEntry) string {
	if e.UploadDate != "" {
		return parsing.NormalizeDate(e.UploadDate)
	}
	return parsing.TimestampToDate(e.ReleaseTimestamp)
}
