// Package bootstrap reinitializes a directory as a fresh git repository and
// points a named remote at a hosting URL.
//
// The steps run strictly in order and every failure ends the run:
//  1. the target directory must exist
//  2. it becomes the git working directory
//  3. existing git metadata is deleted
//  4. git init
//  5. the remote is updated if present, added otherwise
//  6. the resulting remote list is printed
package bootstrap
