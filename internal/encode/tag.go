package encode

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bogem/id3v2/v2"

	"github.com/easforge/emnet-splicer/internal/header"
)

// AlertMeta describes the alert carried by an exported MP3.
type AlertMeta struct {
	Record header.Record
	Purge  time.Time
}

// TagSet contains the ID3 tags to be written
type TagSet struct {
	Title   string // event description, or the raw code if unknown
	Artist  string // sender/station identifier
	Album   string
	Year    int
	Comment string // canonical header text
}

// BuildTags creates a TagSet from alert metadata.
// This is a pure function: AlertMeta → TagSet
// No I/O is performed - use Apply() to write tags to a file.
func BuildTags(meta AlertMeta) TagSet {
	title := meta.Record.Event
	if name, ok := header.EventName(meta.Record.Event); ok {
		title = name
	}

	artist := meta.Record.Sender
	if name, ok := header.OriginatorName(meta.Record.Originator); ok {
		artist = fmt.Sprintf("%s (%s)", meta.Record.Sender, name)
	}

	return TagSet{
		Title:   title,
		Artist:  artist,
		Album:   "EMnet Splicer",
		Year:    meta.Purge.Year(),
		Comment: meta.Record.Canonical(),
	}
}

// Apply writes the tags to an MP3 file.
// This is boundary code - performs file I/O.
func (t TagSet) Apply(filepath string) error {
	tag, err := id3v2.Open(filepath, id3v2.Options{Parse: false})
	if err != nil {
		return fmt.Errorf("open mp3: %w", err)
	}
	defer tag.Close()

	// Set ID3v2.4
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetVersion(4)

	tag.SetArtist(t.Artist)
	tag.SetAlbum(t.Album)
	tag.SetTitle(t.Title)

	if t.Year > 0 {
		tag.SetYear(strconv.Itoa(t.Year))
	}

	if t.Comment != "" {
		tag.AddCommentFrame(id3v2.CommentFrame{
			Encoding:    id3v2.EncodingUTF8,
			Language:    "eng",
			Description: "SAME header",
			Text:        t.Comment,
		})
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tags: %w", err)
	}

	return nil
}
