// Package service provides the registry for demonstration providers.
//
// The registry maintains a catalog of providers, resolves qualified tool
// IDs of the form "provider.tool" to implementations, and supports
// keyword discovery over names, descriptions, and capabilities.
package service
