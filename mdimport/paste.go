package mdimport

import (
	"regexp"
)

// Clipboard formats.
const (
	FormatPlainText = "text/plain"
	FormatHTML      = "text/html"
)

// File describes a file attached to a clipboard payload.
type File struct {
	Name string
	Type string
	Size int64
}

// DataTransfer is the host's clipboard payload.
type DataTransfer interface {
	// GetData returns the payload for format and whether it is present.
	GetData(format string) (string, bool)
	Files() []File
}

// StaticDataTransfer is a DataTransfer backed by plain values.
type StaticDataTransfer struct {
	Data     map[string]string
	FileList []File
}

// GetData implements DataTransfer.
func (d StaticDataTransfer) GetData(format string) (string, bool) {
	value, ok := d.Data[format]
	return value, ok
}

// Files implements DataTransfer.
func (d StaticDataTransfer) Files() []File {
	return d.FileList
}

// ShouldDeserialize decides whether the plain-text part of a clipboard
// payload is imported as Markdown. Payloads carrying HTML are left to the
// HTML importer, even when the HTML part is empty. Without attached files, a
// bare URL is left to link pasting.
func ShouldDeserialize(data string, dt DataTransfer) bool {
	if dt != nil {
		if _, hasHTML := dt.GetData(FormatHTML); hasHTML {
			tracer().Debugf("paste carries HTML, declining")
			return false
		}
		if len(dt.Files()) > 0 {
			return true
		}
	}

	if IsURL(data) {
		tracer().Debugf("paste is a bare URL, declining")
		return false
	}

	return true
}

var (
	protocolAndDomainRe  = regexp.MustCompile(`^(?:\w+:)?//(\S+)$`)
	localhostDomainRe    = regexp.MustCompile(`^localhost[:?\d]*(?:[^:?\d]\S*)?$`)
	nonLocalhostDomainRe = regexp.MustCompile(`^[^\s.]+\.\S{2,}$`)
)

// IsURL reports whether s is a single URL, possibly protocol-relative, with a
// plausible host.
func IsURL(s string) bool {
	match := protocolAndDomainRe.FindStringSubmatch(s)
	if match == nil || match[1] == "" {
		return false
	}

	rest := match[1]
	return localhostDomainRe.MatchString(rest) || nonLocalhostDomainRe.MatchString(rest)
}
