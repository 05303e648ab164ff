// Package file stores search reports as JSON files in a local directory.
package file
