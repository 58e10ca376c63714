package pipeline

import (
	"testing"

	"go-complaint-report/internal/lookup"
	"go-complaint-report/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver() *Resolver {
	return NewResolver(lookup.Default(), DefaultClassifier())
}

func TestResolveExact(t *testing.T) {
	r := newTestResolver()

	e, tier, ok := r.Resolve("Mathura", "02-Ambedkar Nagar", "Burning of Garbage")
	require.True(t, ok)
	assert.Equal(t, model.TierExact, tier)
	assert.Equal(t, "Shri Saurav Agarwal", e.Officer)
	assert.Equal(t, "Gopal SS2", e.Supervisor)

	// zone index prefix and case are ignored
	e, tier, ok = r.Resolve("3-MATHURA", "02-Ambedkar Nagar", "Potholes")
	require.True(t, ok)
	assert.Equal(t, model.TierExact, tier)
	assert.Equal(t, model.DeptCivil, e.Department)
	assert.Equal(t, "Shri Umesh Kumar", e.Officer)
}

func TestResolveWardNumber(t *testing.T) {
	r := newTestResolver()

	for _, ward := range []string{"2-Ambedkar Ngr", "02-Ambedkar Nagar X", "2"} {
		e, tier, ok := r.Resolve("Mathura", ward, "Burning of Garbage")
		require.True(t, ok, ward)
		assert.Equal(t, model.TierWardNumber, tier, ward)
		assert.Equal(t, "02-Ambedkar Nagar", e.Ward, ward)
	}
}

func TestResolveFuzzyName(t *testing.T) {
	r := newTestResolver()

	e, tier, ok := r.Resolve("Mathura", "Ambedkar Nagar", "Burning of Garbage")
	require.True(t, ok)
	assert.Equal(t, model.TierFuzzyName, tier)
	assert.Equal(t, "02-Ambedkar Nagar", e.Ward)
}

func TestResolveCnDUsesCivilPartition(t *testing.T) {
	r := newTestResolver()

	e, _, ok := r.Resolve("Mathura", "02-Ambedkar Nagar", "Illegal Dumping of C&D waste")
	require.True(t, ok)
	assert.Equal(t, model.DeptCivil, e.Department)
	assert.Equal(t, "Amrish NS2", e.Supervisor)
}

func TestResolveUnassigned(t *testing.T) {
	r := newTestResolver()

	_, tier, ok := r.Resolve("Mathura", "Qqqq", "Potholes")
	assert.False(t, ok)
	assert.Equal(t, model.TierNone, tier)

	_, _, ok = r.Resolve("Mathura", "", "Potholes")
	assert.False(t, ok)
}

func TestResolveAllDoesNotMutateInput(t *testing.T) {
	r := newTestResolver()
	in := []model.ComplaintRecord{
		{Zone: "Mathura", Ward: "02-Ambedkar Nagar", Subtype: "Potholes"},
		{Zone: "Mathura", Ward: "Qqqq", Subtype: "Potholes"},
	}

	out := r.ResolveAll(in)
	require.Len(t, out, 2)
	assert.Equal(t, "Shri Umesh Kumar", out[0].AssignedOfficer)
	assert.Equal(t, "Amrish NS", out[0].AssignedSupervisor)
	assert.Equal(t, model.TierExact, out[0].MatchTier)
	assert.False(t, out[1].Assigned())

	assert.Empty(t, in[0].AssignedOfficer)
}

func TestNormalizeSupervisor(t *testing.T) {
	assert.Equal(t, "Jitendra SS", NormalizeSupervisor("Jitendra SS8"))
	assert.Equal(t, NormalizeSupervisor("Jitendra SS8"), NormalizeSupervisor("Jitendra SS9"))
	assert.NotEqual(t, NormalizeSupervisor("Sanjay SS1"), NormalizeSupervisor("Sanjay NS1"))
	assert.Equal(t, "Gopal Prashad Saini SS", NormalizeSupervisor(" Gopal Prashad Saini SS14 "))
	assert.Equal(t, "Ramesh", NormalizeSupervisor("Ramesh"))
}
