package settings

import (
	"time"
)

type Settings struct {
	// sessions not used for this long are removed by the reaper
	SessionTTL time.Duration
	// zero means no limit
	MaxSessions int
	// fold accented letters to their base letter before encryption by default
	FoldText bool
}
