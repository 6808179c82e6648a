package services

import (
	"time"

	"github.com/gigclaw/backend/internal/core/ports"
)

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func NewSystemClock() ports.Clock { return systemClock{} }
