// Package library computes where a file belongs in an artist/album
// organized music collection and performs the filesystem moves.
//
// TargetDir derives root/<artist>/<album> from a file's tags, Sanitize
// makes tag values safe as path segments, and Move/Rename mutate the
// filesystem (the only functions in this module that do).
package library
