// Package formats provides parsers for the text mesh descriptions the
// scene is assembled from.
package formats
