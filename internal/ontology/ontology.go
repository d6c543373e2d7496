// Package ontology holds the IRIs of the classes and properties ldgraph emits.
//
// Two vocabularies are used: schema.org for documents, ratings, defined terms
// and software, and the Node-RED user application ontology for runtime facts
// that schema.org has no term for.
package ontology

// Namespaces.
const (
	Schema = "https://schema.org/"
	NRUA   = "https://w3id.org/nodered-static-program-analysis/user-application-ontology#"
)

// Class IRIs.
const (
	// ClassDigitalDocument is the type of every forum topic and issue.
	ClassDigitalDocument    = Schema + "DigitalDocument"
	ClassDefinedTermSet     = Schema + "DefinedTermSet"
	ClassDefinedTerm        = Schema + "DefinedTerm"
	ClassRating             = Schema + "Rating"
	ClassOperatingSystem    = Schema + "OperatingSystem"
	// ClassSoftwareSourceCode is the type of a flow-library tab.
	ClassSoftwareSourceCode = Schema + "SoftwareSourceCode"

	ClassNodeJS  = NRUA + "NodeJs"
	ClassNodeRED = NRUA + "NodeRed"
)

// Property IRIs.
const (
	PropName             = Schema + "name"
	PropInDefinedTermSet = Schema + "inDefinedTermSet"
	PropWorstRating      = Schema + "worstRating"
	PropBestRating       = Schema + "bestRating"
	PropRatingValue      = Schema + "ratingValue"
	PropVersion          = Schema + "version"
	PropTitle            = Schema + "title"
	PropDate             = Schema + "date"
	PropURL              = Schema + "url"
	PropCategory         = Schema + "category"
	PropContentRating    = Schema + "contentRating"
	PropAbout            = Schema + "about"
	PropIdentifier       = Schema + "identifier"
	PropKeywords         = Schema + "keywords"

	// PropIsContainerised is only ever emitted with a true value.
	PropIsContainerised = NRUA + "isContainerised"
)
