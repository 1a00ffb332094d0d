package feeds

// Format is the response encoding requested from the API.
type Format string

// Supported output formats.
const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
	FormatCSV  Format = "csv"
)

// Formats returns the supported output formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatXML, FormatCSV}
}

// IsValidFormat reports whether format is json, xml or csv.
func IsValidFormat(format string) bool {
	switch Format(format) {
	case FormatJSON, FormatXML, FormatCSV:
		return true
	}
	return false
}

// Valid reports whether f is a supported format.
func (f Format) Valid() bool { return IsValidFormat(string(f)) }

func (f Format) String() string { return string(f) }
