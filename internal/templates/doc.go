// Package templates holds the embedded project templates: CMakeLists.txt,
// .gitignore, .clangd and the starter main.cpp for each supported C++
// standard. Only CMakeLists.txt is rendered (project name and standard); the
// other files are returned verbatim.
package templates
