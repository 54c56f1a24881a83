package entity

import "encoding/json"

// IngestSource names a database the analytics service can ingest from.
type IngestSource string

const (
	IngestMySQL      IngestSource = "mysql"
	IngestPostgreSQL IngestSource = "postgresql"
	IngestMongoDB    IngestSource = "mongodb"
)

// IsValid reports whether the source is supported.
func (s IngestSource) IsValid() bool {
	switch s {
	case IngestMySQL, IngestPostgreSQL, IngestMongoDB:
		return true
	default:
		return false
	}
}

// Report is an analytics result. The dashboard only renders it, so the shape stays raw.
type Report = json.RawMessage
