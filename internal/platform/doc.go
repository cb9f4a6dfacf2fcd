package platform

// Package platform contains OS integration glue: locating bundled resources
// and the configuration file, and sending the names chart to the printer.
