// Package service contains the logic between the handlers and the data
// layers that is not a single repository call: the catalogue of named
// reports shared by the HTTP boundary and the CLI, their typed parameters
// and the tabular rendering of their results.
package service
