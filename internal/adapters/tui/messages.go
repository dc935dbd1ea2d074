package tui

import (
	"time"

	"go.trai.ch/asyncwalk/internal/core/domain"
)

// MsgEntry reports one yielded entry.
type MsgEntry struct {
	Path string
	Kind domain.EntryKind
	// Size is only meaningful when HasSize is set.
	Size    int64
	HasSize bool
}

// MsgError reports one yielded error item.
type MsgError struct {
	Path string
	Text string
}

// MsgSummary marks the end of the traversal.
type MsgSummary struct {
	Summary domain.Summary
}

type msgTick time.Time
