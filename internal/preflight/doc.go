// Package preflight reports whether podclip's environment is ready.
//
// RunAll checks that the data and manifest directories are usable and notes
// whether ffmpeg is on PATH. ffmpeg is optional: podclip only plans concat
// manifests, so a missing binary is reported but never fails the run. The
// serve command logs these results at startup and `podclip doctor` prints them.
package preflight
