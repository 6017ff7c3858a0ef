package index

// Status is a document's lifecycle/visibility marker. It has no
// ordering semantics; it exists purely so find_top predicates and
// status filters can classify documents.
type Status string

// Recognized status values.
const (
	Actual     Status = "ACTUAL"
	Irrelevant Status = "IRRELEVANT"
	Banned     Status = "BANNED"
	Removed    Status = "REMOVED"
)

// Metadata is the information stored per live document outside of the
// inverted index: its id, average rating, and status.
type Metadata struct {
	ID     int
	Rating int
	Status Status
}
