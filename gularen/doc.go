// Package gularen implements the Gularen markup language frontend: a
// context-sensitive lexer and a recursive-descent parser that turn a
// UTF-8 source buffer into a typed document tree.
//
// The package is deliberately single-threaded and allocation-conscious:
// a Lexer owns its source buffer and cursor, a Parser owns a token
// cursor and a pending-annotation buffer, and a parsed Document owns
// every node reachable from it. Nothing here performs I/O beyond what
// an Includer collaborator is asked to do on behalf of `?[path]`
// directives; rendering to HTML, JSON or a debug dump lives in the
// backend subpackages.
package gularen
