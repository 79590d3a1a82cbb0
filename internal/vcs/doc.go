// Package vcs initializes a git repository in a freshly generated project.
// The default backend runs the git binary; the builtin backend uses go-git so
// hosts without git installed can still get a repository.
package vcs
