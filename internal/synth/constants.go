package synth

// Shape distribution cases for generated candidates. Each shape is built to
// fail a specific validation stage, so a batch spreads traffic across the
// email-format, placeholder, brand-name, and URL-shape checks. There is no
// duplicate-email shape: a duplicate only registers once a first copy has
// been accepted, and an accepted synthetic record would leak into the
// output dataset.
const (
	caseMalformedEmail = 0
	caseReservedDomain = 1
	caseMarkerLocal    = 2
	caseBrandName      = 3
	caseBadProfileLink = 4
	shapeCount         = 5
)

// Slug length taken from the uuid to keep links readable.
const slugLength = 8

// reservedDomains are RFC 2606 domains, never routable and always caught
// by placeholder validation downstream.
var reservedDomains = []string{
	"example.com",
	"example.net",
	"example.org",
}

// unroutableDomain hosts the emails of shapes that must get past the
// placeholder stage to reach a later check. The .invalid TLD is RFC 2606
// reserved, so these addresses can never deliver anywhere.
const unroutableDomain = "nowhere.invalid"
