// Package evolution provides vocabulary terms for code evolution and
// provenance activities: commits, refactorings, renames, and the agents
// that performed them.
package evolution

// Namespace is the base IRI prefix for evolution vocabulary terms.
const Namespace = "https://semcode.dev/ontology/evolution/"

// Class IRIs. Every activity is additionally typed prov:Activity.
const (
	// ClassActivity is the generic evolution activity.
	ClassActivity = Namespace + "Activity"

	// ClassCommit represents a version-control commit.
	ClassCommit = Namespace + "Commit"

	// ClassRefactor represents a behavior-preserving restructuring.
	ClassRefactor = Namespace + "Refactor"

	// ClassRename represents a rename of a module or function.
	ClassRename = Namespace + "Rename"
)

// Object property IRIs.
const (
	// PropAffectsEntity links an activity to a code entity it touched.
	PropAffectsEntity = Namespace + "affectsEntity"
)

// Data property IRIs.
const (
	// PropActivityLabel is a short human-readable activity description.
	PropActivityLabel = Namespace + "activityLabel"

	// PropCommitSHA is the version-control revision identifier.
	PropCommitSHA = Namespace + "commitSHA"
)
