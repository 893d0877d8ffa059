package store

// WorkflowRef is a lightweight reference to a workflow.
type WorkflowRef struct {
	// ID is the workflow directory name.
	ID string

	// Dir is the full path to the workflow directory.
	Dir string

	// Path is the full path to the workflow.yaml file.
	Path string
}
