// Package models holds structs for modelling data, e.g. channel targets and video listings.
package models

// Video is one entry in a channel's flattened video listing.
//
// Immutable once produced by extraction; UploadDate is "yyyymmdd" or empty.
type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	UploadDate  string `json:"upload_date,omitempty"`
}
