// Package render serializes assembled documents to JSON or YAML and reads
// them back. It is the encoding boundary of the module: the generator
// produces document values, render turns them into bytes.
package render
