// Package project validates target directories and materializes a new
// C++/CMake project into them.
//
// Resolution (PrepareNew, PrepareInit) turns a user-supplied path into
// Details after checking the directory preconditions. Materializer.Materialize
// then writes CMakeLists.txt, .gitignore, the optional .clangd, src/main.cpp
// and initializes a repository. Every file is created exclusively, so an
// existing entry is reported as an error instead of being overwritten. A
// failure part-way through leaves the files written so far in place.
package project
