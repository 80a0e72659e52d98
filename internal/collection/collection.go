// Package collection implements the remote collection view shared by every
// resource list in hubctl: an in-memory cache of the last fetched collection,
// a pure filter engine, a clamping paginator, and a mutation coordinator that
// reconciles the cache with server-confirmed state. The backend owns identity
// and relational integrity; this package only keeps the local view consistent.
package collection

// Record is implemented by every resource record held in a collection view.
type Record interface {
	// RecordID returns the server-assigned identifier of the record.
	RecordID() string
}
