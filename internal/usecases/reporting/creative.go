package reporting

import (
	metadomain "github.com/adstack/meta-ads-reporter/infrastructure/integrator/meta/domain"
)

// Creative type tags written to the report
const (
	CreativeTypeVideo   = "Video"
	CreativeTypeImage   = "Image"
	CreativeTypeUnknown = "Unknown"
)

// ClassifyCreative maps creative metadata to its type tag. Video wins over
// image when both flags are set; a missing creative is Unknown.
func ClassifyCreative(creative *metadomain.AdCreative) string {
	if creative == nil {
		return CreativeTypeUnknown
	}
	if creative.HasVideo {
		return CreativeTypeVideo
	}
	if creative.HasImage {
		return CreativeTypeImage
	}
	return CreativeTypeUnknown
}
