package metadomain

// CreativeNode is the raw creative object nested inside a batched ad lookup.
type CreativeNode struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ImageHash    string `json:"image_hash"`
	VideoID      string `json:"video_id"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// AdNode is one entry of the ?ids=... batch response, keyed by ad id.
type AdNode struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Creative *CreativeNode `json:"creative"`
}

// AdCreative is the processed creative metadata for one ad. HasVideo and
// HasImage are derived from the presence of video_id / image_hash.
type AdCreative struct {
	CreativeID   string `json:"creative_id"`
	CreativeName string `json:"creative_name"`
	ImageHash    string `json:"image_hash"`
	VideoID      string `json:"video_id"`
	ThumbnailURL string `json:"thumbnail_url"`
	HasVideo     bool   `json:"has_video"`
	HasImage     bool   `json:"has_image"`
}
