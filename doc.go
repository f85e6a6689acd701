// Package filelog provides a synchronous, rotating file logger with date-bucketed storage,
// age-based retention, level gating, console mirroring and pre-write buffering.
//
// Features:
//   - Ordered level registry with custom levels and case-insensitive lookup
//   - Size-triggered rotation into numbered files ({name}_{index}{ext})
//   - Optional per-day storage directories with day-rollover detection
//   - Retention sweep of dated directories and stale log files
//   - Bounded in-memory buffering that flushes when buffering is turned off
//   - Console mirroring with per-level colors
//   - Tabular, property, error-chain and banner entries
//   - Thread-safe operations
//
// No file handle is held between writes: every entry opens, appends and closes the
// active file, and rotation and retention checks run inline with the write.
//
// Lixen Wraith, 2024
package filelog
