// Package xmltree parses markup documents into a generic, ordered tree of
// nodes with string-keyed attributes. It is the only place in the program
// that knows about XML; everything else reads documents through the Node
// interface, which keeps the parser swappable.
package xmltree
