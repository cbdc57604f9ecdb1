// Package types defines the shared contract between the registry, the
// runner, and demonstration providers: service and tool metadata, the
// execution context, and the uniform params-in/result-out shapes.
package types
