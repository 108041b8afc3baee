package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckoutSession_Expired(t *testing.T) {
	now := time.Now().UTC()
	s := &CheckoutSession{
		ID:        "chk-1",
		Step:      StepDetails,
		ExpiresAt: now.Add(30 * time.Minute),
	}

	assert.False(t, s.Expired(now))
	assert.False(t, s.Expired(now.Add(29*time.Minute)))
	assert.True(t, s.Expired(now.Add(31*time.Minute)))
}
