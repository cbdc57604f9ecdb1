package types

// Category groups demonstrations by the facility they exercise
type Category string

const (
	CategoryConcurrency Category = "concurrency"
	CategoryTime        Category = "time"
	CategoryCollections Category = "collections"
	CategoryFile        Category = "file"
	CategorySystem      Category = "system"
	CategoryNetwork     Category = "network"
	CategoryValues      Category = "values"
	CategoryFuture      Category = "future"
	CategoryRecovery    Category = "recovery"
)

// Service represents a demonstration provider definition
type Service struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Category     Category    `json:"category"`
	Capabilities []string    `json:"capabilities"`
	Tools        []Tool      `json:"tools"`
	DataModels   []DataModel `json:"data_models,omitempty"`
}

// Tool represents a single demonstration exposed by a provider
type Tool struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
	Returns     string      `json:"returns"`
}

// Parameter represents a tool parameter
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// DataModel represents a data structure a provider works with
type DataModel struct {
	Name   string            `json:"name"`
	Fields map[string]string `json:"fields"`
}

// Context carries run-level identity through tool executions
type Context struct {
	RunID  string `json:"run_id,omitempty"`
	ExecID string `json:"exec_id,omitempty"`
}

// Result represents a tool execution result
type Result struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *string                `json:"error,omitempty"`
}

// Lines returns the human-readable transcript lines a tool reported, if any.
func (r *Result) Lines() []string {
	if r == nil || r.Data == nil {
		return nil
	}
	lines, _ := r.Data["lines"].([]string)
	return lines
}

// Success builds a successful result
func Success(data map[string]interface{}) (*Result, error) {
	return &Result{Success: true, Data: data}, nil
}

// Failure builds a failed result carrying a message
func Failure(message string) (*Result, error) {
	msg := message
	return &Result{Success: false, Error: &msg}, nil
}
