package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/observerdev/observer/internal/domain"
)

func bucketByName(buckets []domain.Bucket, name string) *domain.Bucket {
	for i := range buckets {
		if buckets[i].Name == name {
			return &buckets[i]
		}
	}
	return nil
}

func TestClassify_Empty(t *testing.T) {
	assert.Empty(t, Classify(nil))
	assert.Empty(t, Classify([]domain.Issue{}))
}

func TestClassify_EveryIssueLandsSomewhere(t *testing.T) {
	issues := []domain.Issue{
		{File: "a.ts", Severity: domain.SeverityCritical, Type: "typescript_error"},
		{File: "b.ts", Severity: domain.SeverityHigh, Category: domain.CategoryArchitecture},
		{File: "c.ts", Severity: domain.SeverityLow, Category: domain.CategoryOther},
		{File: "d.ts", Severity: "bogus", Rule: "No Such Rule"},
	}

	buckets := Classify(issues)
	total := 0
	for _, b := range buckets {
		total += b.Count
		assert.Len(t, b.Issues, b.Count)
	}
	assert.Equal(t, len(issues), total, "classification must be exhaustive")
}

func TestClassify_BlockerRequiresCritical(t *testing.T) {
	// A blocker-flagged type with a non-critical severity must not reach
	// BLOCKERS, including the native "warning" vocabulary.
	issues := []domain.Issue{
		{File: "a.ts", Severity: domain.SeverityWarning, Type: "security", Rule: "Auth Guards"},
		{File: "b.ts", Severity: domain.SeverityHigh, Type: "typescript_error", Rule: "Type-Database Alignment"},
	}

	buckets := Classify(issues)
	assert.Nil(t, bucketByName(buckets, domain.BucketBlockers))
	structural := bucketByName(buckets, domain.BucketStructural)
	require.NotNil(t, structural)
	assert.Equal(t, 2, structural.Count)
}

func TestClassify_CriticalBlockerType(t *testing.T) {
	buckets := Classify([]domain.Issue{
		{File: "lib/db/users.ts", Severity: domain.SeverityCritical, Type: "typescript_error", Rule: "Type-Database Alignment"},
		{File: ".observer/contracts/user.yaml", Severity: domain.SeverityCritical, Type: "missing_contracts", Rule: "Contract Compliance"},
	})

	blockers := bucketByName(buckets, domain.BucketBlockers)
	require.NotNil(t, blockers)
	assert.Equal(t, 2, blockers.Count)
	assert.Equal(t, 1, blockers.Priority)
}

func TestClassify_CriticalBlockerRuleName(t *testing.T) {
	// The rule name alone promotes a critical, no type tag or category needed.
	buckets := Classify([]domain.Issue{
		{File: "lib/db/orders.ts", Severity: domain.SeverityCritical, Rule: "Contract Violation"},
	})

	blockers := bucketByName(buckets, domain.BucketBlockers)
	require.NotNil(t, blockers)
	assert.Equal(t, 1, blockers.Count)
}

func TestClassify_SecurityCategoryWithoutTypeIsStructural(t *testing.T) {
	// An auth issue tagged only by rule and category stays structural even
	// at critical severity; only the explicit "security" type tag promotes.
	issue := domain.Issue{
		File:     "app/admin/page.tsx",
		Rule:     "Auth Guards",
		Category: domain.CategorySecurity,
		Severity: domain.SeverityCritical,
	}

	buckets := Classify([]domain.Issue{issue})
	assert.Nil(t, bucketByName(buckets, domain.BucketBlockers))
	structural := bucketByName(buckets, domain.BucketStructural)
	require.NotNil(t, structural)
	assert.Equal(t, 1, structural.Count)

	issue.Type = "security"
	buckets = Classify([]domain.Issue{issue})
	require.NotNil(t, bucketByName(buckets, domain.BucketBlockers))
	assert.Nil(t, bucketByName(buckets, domain.BucketStructural))
}

func TestClassify_FallbackIsCompliance(t *testing.T) {
	buckets := Classify([]domain.Issue{
		{File: "hooks/useUsers.ts", Rule: "Loading States", Category: domain.CategoryUserExperience, Severity: domain.SeverityWarning},
		{File: "components/Form.tsx", Rule: "Form Validation", Category: domain.CategoryValidation, Severity: domain.SeverityWarning},
	})

	require.Len(t, buckets, 1)
	assert.Equal(t, domain.BucketCompliance, buckets[0].Name)
	assert.Equal(t, 2, buckets[0].Count)
}

func TestClassify_NormalizesSeverities(t *testing.T) {
	buckets := Classify([]domain.Issue{
		{File: "a.ts", Rule: "Loading States", Severity: domain.SeverityWarning},
	})

	require.Len(t, buckets, 1)
	require.Len(t, buckets[0].Issues, 1)
	assert.Equal(t, domain.SeverityHigh, buckets[0].Issues[0].Severity)
	assert.Equal(t, domain.CategoryUserExperience, buckets[0].Issues[0].Category, "empty category derived from rule")
}

func TestClassify_EmptyBucketsDropped(t *testing.T) {
	buckets := Classify([]domain.Issue{
		{File: "a.ts", Severity: domain.SeverityCritical, Type: "security"},
	})

	require.Len(t, buckets, 1)
	assert.Equal(t, domain.BucketBlockers, buckets[0].Name)
}

func TestClassify_BucketOrder(t *testing.T) {
	buckets := Classify([]domain.Issue{
		{File: "a.ts", Severity: domain.SeverityLow, Category: domain.CategoryOther},
		{File: "b.ts", Severity: domain.SeverityHigh, Category: domain.CategoryPerformance},
		{File: "c.ts", Severity: domain.SeverityCritical, Type: "export_completeness"},
	})

	require.Len(t, buckets, 3)
	assert.Equal(t, domain.BucketBlockers, buckets[0].Name)
	assert.Equal(t, domain.BucketStructural, buckets[1].Name)
	assert.Equal(t, domain.BucketCompliance, buckets[2].Name)
	for i, b := range buckets {
		assert.Equal(t, i+1, b.Priority)
	}
}

func TestCounts(t *testing.T) {
	buckets := Classify([]domain.Issue{
		{File: "a.ts", Severity: domain.SeverityCritical, Type: "security"},
		{File: "b.ts", Severity: domain.SeverityHigh, Category: domain.CategoryArchitecture},
		{File: "c.ts", Severity: domain.SeverityHigh, Category: domain.CategoryArchitecture},
		{File: "d.ts", Severity: domain.SeverityLow, Category: domain.CategoryOther},
	})

	blockers, structural, compliance := Counts(buckets)
	assert.Equal(t, 1, blockers)
	assert.Equal(t, 2, structural)
	assert.Equal(t, 1, compliance)

	blockers, structural, compliance = Counts(nil)
	assert.Zero(t, blockers)
	assert.Zero(t, structural)
	assert.Zero(t, compliance)
}
