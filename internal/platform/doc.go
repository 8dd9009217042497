package platform

// Package platform contains OS/platform integration glue: filesystem
// helpers, path normalization, per-user data directory resolution, and
// opening folders in the system file manager.
