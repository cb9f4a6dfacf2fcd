// Package catalog loads the knowledge base of the 72 names from a CSV
// resource and serves read-only lookups by sequence position.
package catalog
