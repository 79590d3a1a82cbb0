// Package doctor checks that the external tools a project needs are installed
// and that the user config file is valid.
package doctor
