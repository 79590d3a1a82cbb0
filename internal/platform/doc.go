// Package platform answers host-specific filesystem questions, currently
// whether a directory entry counts as an executable program. On Unix this is
// a regular file with any execute permission bit set; on Windows, where
// permission bits are not meaningful, it is a regular file whose extension
// appears in PATHEXT.
package platform
