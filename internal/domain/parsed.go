package domain

import "iter"

// ParsedFeed is the parser's normalized view of a feed document. Posts is a
// lazy, forward-only, single-pass sequence bound to the underlying byte
// stream: it can only be iterated once and must be drained before the stream
// is closed. Re-parsing the document is the only way to restart it.
type ParsedFeed struct {
	Name         string
	Description  string
	IconURL      string
	HomepageLink string
	Link         string
	Posts        iter.Seq2[ParsedPost, error]
}

// ParsedPost is one normalized feed item. PublishedAt is unix milliseconds;
// when DateParsed is false no parseable date was found and PublishedAt holds
// the parse-time clock instead, so it must not be treated as authoritative.
type ParsedPost struct {
	Title        string
	Link         string
	Description  string
	RawContent   string
	ImageURL     string
	AudioURL     string
	CommentsLink string
	PublishedAt  int64
	DateParsed   bool
}
