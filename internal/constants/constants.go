package constants

// ContextKeyIdentity is the gin context key holding the verified identity.
const ContextKeyIdentity = "identity"

// Pagination defaults for admin listings.
const (
	MinPageSize     = 1
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// DefaultCourseColor is used when a shared task's course has no color record.
const DefaultCourseColor = "#000"

// Share token generation parameters. 16 bytes gives 128 bits of entropy.
const (
	ShareTokenBytes       = 16
	MaxShareTokenAttempts = 5
)

// DeadlineLayout is the canonical naive timestamp form for task deadlines.
const DeadlineLayout = "2006-01-02T15:04:05"
