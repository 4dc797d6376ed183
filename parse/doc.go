// Package parse turns raw annotation text into structured presentation
// data: classes, an id, key=value attributes and CSS declarations.
package parse
