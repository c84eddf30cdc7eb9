package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReferenceAppointment(t *testing.T) {
	ref, err := ParseReference("64a1f0c2e4b09a5d3c2b1a09")
	require.NoError(t, err)
	assert.Equal(t, RefAppointment, ref.Kind)
	assert.Equal(t, "64a1f0c2e4b09a5d3c2b1a09", ref.AppointmentID)
}

func TestParseReferencePlan(t *testing.T) {
	ref, err := ParseReference("plano_mensal_user_abc123")
	require.NoError(t, err)
	assert.Equal(t, RefPlan, ref.Kind)
	assert.Equal(t, "mensal", ref.PlanType)
	assert.Equal(t, "abc123", ref.UserID)

	ref, err = ParseReference("plano_anual_user_u-42")
	require.NoError(t, err)
	assert.Equal(t, "anual", ref.PlanType)
	assert.Equal(t, "u-42", ref.UserID)
}

func TestParseReferenceRejectsMalformed(t *testing.T) {
	for _, raw := range []string{
		"",
		"not-a-reference",
		"64a1f0c2e4b09a5d3c2b1a0",   // 23 hex chars
		"64a1f0c2e4b09a5d3c2b1a0g",  // non-hex
		"64A1F0C2E4B09A5D3C2B1A09",  // uppercase hex is not an object id
		"plano_semanal_user_abc123", // unknown cycle
		"plano_mensal_abc123",       // missing user segment
	} {
		_, err := ParseReference(raw)
		var unrec *ErrUnrecognizedReference
		assert.ErrorAs(t, err, &unrec, raw)
	}
}

func TestMintedReferencesRoundTrip(t *testing.T) {
	ref, err := ParseReference(AppointmentReference("64a1f0c2e4b09a5d3c2b1a09"))
	require.NoError(t, err)
	assert.Equal(t, RefAppointment, ref.Kind)

	ref, err = ParseReference(PlanReference("anual", "owner-9"))
	require.NoError(t, err)
	assert.Equal(t, RefPlan, ref.Kind)
	assert.Equal(t, "anual", ref.PlanType)
	assert.Equal(t, "owner-9", ref.UserID)
}
