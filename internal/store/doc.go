package store

// Package store implements durable ownership of the animation files and
// their persisted display order: two root directories (built-in and
// user-writable), a JSON config file holding the custom order, and a
// filesystem watcher that reports external changes to either root.
