package redis

// connErrorStrings contains string patterns used to identify
// connectivity-related errors in Redis connections. Matching errors are
// classified as transient (backends.HealthError) so the service can apply
// its fail-open/fail-closed policy; operational errors like WRONGTYPE or
// NOSCRIPT are intentionally excluded and propagate unchanged.
//
// The patterns are matched against the lowercase error message. Users can
// override them via Config.ConnErrorStrings.
var connErrorStrings = []string{
	"connection refused",
	"connection timeout",
	"connection reset",
	"network is unreachable",
	"no such host",
	"timeout",
	"i/o timeout",
	"broken pipe",
	"connection pool exhausted",
}
