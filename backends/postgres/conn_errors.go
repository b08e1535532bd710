package postgres

// connErrorStrings contains string patterns used to identify
// connectivity-related errors from the PostgreSQL driver. Matching errors
// are classified as transient; constraint or syntax errors propagate
// unchanged.
var connErrorStrings = []string{
	"connection refused",
	"connection reset",
	"network is unreachable",
	"no such host",
	"timeout",
	"i/o timeout",
	"broken pipe",
	"server closed the connection",
	"conn closed",
	"pool closed",
}
