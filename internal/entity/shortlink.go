package entity

// ShortLink is the remote shortening service's record of one link.
type ShortLink struct {
	LongURL   string `json:"longUrl"`
	ShortURL  string `json:"shortUrl"`
	ShortCode string `json:"shortCode"`
}

// LinkAssociation is the persisted link between one post and one short
// link. A partial record counts as no association at all.
type LinkAssociation struct {
	LongURL   string
	ShortURL  string
	ShortCode string
}

func (a LinkAssociation) Complete() bool {
	return a.LongURL != "" && a.ShortURL != "" && a.ShortCode != ""
}

// SyncRequest is built per sync attempt and never persisted. A nil Tags
// slice means the tags field is omitted from the remote call, which the
// remote service treats as "keep previously stored tags".
type SyncRequest struct {
	LongURL string
	Title   string
	Tags    []string
}
