// Package file provides a file-based config.DataFetcher backed by an afero.Fs.
//
// The file is read once, when the constructor returned by NewFetcher runs;
// Fetch hands out copies of those bytes. Errors name the offending path and
// keep the underlying cause, so errors.Is(err, fs.ErrNotExist) works for
// missing files and errors.Is(err, ErrPathIsDirectory) for directories.
package file
