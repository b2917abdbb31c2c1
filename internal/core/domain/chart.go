package domain

// Chart is what a chart engine renders for a profile.
type Chart struct {
	// Artifact is the rendered chart document.
	Artifact []byte

	// ArtifactExt is the file extension for Artifact, without the dot.
	ArtifactExt string

	// Report is the human-readable report text.
	Report string
}

// ChartOptions controls a single chart generation.
type ChartOptions struct {
	// OutputDir overrides the configured output directory when non-empty.
	OutputDir string

	// WriteReport writes the text report alongside the chart artifact.
	WriteReport bool
}

// ChartResult describes the files produced for a profile.
type ChartResult struct {
	// ID uniquely identifies this generation.
	ID string

	// ArtifactPath is where the chart artifact was written.
	ArtifactPath string

	// ReportPath is where the report was written, empty if it was not requested.
	ReportPath string

	// Report is the report text, available even when not written to disk.
	Report string
}
