// Package fix repairs validation issues on fitted slides in place.
//
// Each issue category has one strategy, tried from least to most
// destructive: refitting fonts, moving and growing boxes, and only in
// aggressive mode cutting text. Repairs run in category priority order
// inside an iterative loop that re-validates after every pass; later
// passes target only surviving critical issues, so the loop converges
// instead of chasing suggestions. Issues with no strategy, and repairs
// that do not take, are recorded in the summary rather than treated as
// errors.
package fix
