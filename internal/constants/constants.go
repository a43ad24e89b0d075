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

	// ShortHTTPTimeout is used for quick operations such as the login check.
	ShortHTTPTimeout = 10 * time.Second

	// NATSFlushTimeout bounds the wait for published listings to reach the server.
	NATSFlushTimeout = 5 * time.Second
)

// HTTP headers and content types.
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderAccept        = "Accept"
	HeaderUserAgent     = "User-Agent"

	// HeaderDetailedNotesVersion selects the response schema of the detailed notes resource.
	HeaderDetailedNotesVersion = "X-LC-DETAILED-NOTES-VERSION"

	// HeaderListingVersion selects the response schema of the loan listing resource.
	HeaderListingVersion = "X-LC-LISTING-VERSION"

	ContentTypeJSON = "application/json"

	// DefaultUserAgent is sent unless Config.UserAgent overrides it.
	DefaultUserAgent = "lendingclub-go"
)

// Wire formats.
const (
	// TransferDateLayout is the date layout accepted by the funds resources (MM/dd/yyyy).
	TransferDateLayout = "01/02/2006"
)

// Validation and limits.
const (
	// ConfigSetArgCount is the argument count of "lc config set <key> <value>".
	ConfigSetArgCount = 2

	// JSONIndentSize is the indentation used for JSON and YAML output.
	JSONIndentSize = 2
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)

// Messaging constants.
const (
	// DefaultNATSSubject is the subject listed loans are published on.
	DefaultNATSSubject = "lendingclub.loans.listed"
)
