package export

// Result is the machine-readable outcome of one export, serialized back
// to the caller as JSON. Counts are elements actually created; records
// skipped for unusable geometry are tallied separately.
type Result struct {
	Success bool   `json:"success"`
	File    string `json:"file,omitempty"`
	Error   string `json:"error,omitempty"`

	ExportID string `json:"exportId,omitempty"`

	ChamberCount    int `json:"chambers_count"`
	PipeCount       int `json:"pipes_count"`
	CableTrayCount  int `json:"cable_trays_count"`
	HangerCount     int `json:"hangers_count"`
	LightCount      int `json:"lights_count"`
	ConnectionCount int `json:"connections_count"`
	RoadCount       int `json:"roads_count"`
	PathCount       int `json:"paths_count"`

	ElementCount int `json:"element_count"`
	SkippedCount int `json:"skipped_count"`
}

func failure(exportID string, err error) *Result {
	return &Result{ExportID: exportID, Error: err.Error()}
}
