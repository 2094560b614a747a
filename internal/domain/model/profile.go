// Package model contains domain models passed between layers.
package model

// RoleType identifies the listing category a candidate was scraped from.
// It is set by the fetcher from the page it is paginating, never derived
// from record content.
type RoleType string

// Supported role categories.
const (
	RoleUGCCreator  RoleType = "UGC Creator"
	RoleVideoEditor RoleType = "Video Editor"
)

// Roles returns all supported role categories in scrape order.
func Roles() []RoleType {
	return []RoleType{RoleUGCCreator, RoleVideoEditor}
}

// Candidate is a parsed-but-unvalidated profile entry produced by the
// extractor. Fields are free text and may be empty or malformed; the
// validation pipeline decides their fate.
type Candidate struct {
	Name        string
	Email       string
	ProfileLink string
	Role        RoleType
}

// Profile is a candidate that passed every validation stage. Email is
// normalized to lowercase and Name is whitespace-trimmed. A Profile is
// immutable once produced and owned by the exporter from that point.
type Profile struct {
	Name        string
	Email       string
	ProfileLink string
	Role        RoleType
}
