// Package prov provides PROV-O IRI constants referenced by the evolution
// builders. The terms are fixed W3C vocabulary, kept as plain constants.
package prov

// Namespace is the PROV-O base IRI.
const Namespace = "http://www.w3.org/ns/prov#"

// Class IRIs.
const (
	ClassActivity = Namespace + "Activity"
	ClassAgent    = Namespace + "Agent"
	ClassEntity   = Namespace + "Entity"
)

// Object property IRIs.
const (
	PropUsed              = Namespace + "used"
	PropGenerated         = Namespace + "generated"
	PropWasAssociatedWith = Namespace + "wasAssociatedWith"
	PropWasDerivedFrom    = Namespace + "wasDerivedFrom"
)

// Data property IRIs.
const (
	PropStartedAtTime = Namespace + "startedAtTime"
	PropEndedAtTime   = Namespace + "endedAtTime"
)
