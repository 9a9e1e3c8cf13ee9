package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Transport retry tuning, applied only when retries are explicitly enabled.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Command argument counts.
const (
	// TwoArgumentsMax is used by commands taking exactly two arguments.
	TwoArgumentsMax = 2
)

// Paging limits of the Helix API.
const (
	// DefaultPageSize is the page size Helix applies when "first" is omitted.
	DefaultPageSize = 20

	// MaxPageSize is the largest page size Helix accepts.
	MaxPageSize = 100
)
