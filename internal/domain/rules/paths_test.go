package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/observerdev/observer/internal/domain"
)

func TestIsHookFile(t *testing.T) {
	cfg := domain.DefaultConfig()

	assert.True(t, isHookFile("hooks/useUsers.ts", cfg))
	assert.True(t, isHookFile("src/hooks/queries.ts", cfg), "anything in a hook dir counts")
	assert.True(t, isHookFile("app/useOrders.ts", cfg), "use* naming convention")
	assert.True(t, isHookFile("components/useWidget.tsx", cfg))

	assert.False(t, isHookFile("lib/db/users.ts", cfg), "users is not a hook name")
	assert.False(t, isHookFile("app/useful.ts", cfg))
	assert.False(t, isHookFile("app/use.ts", cfg))
}

func TestIsHookFile_CustomDirs(t *testing.T) {
	cfg := domain.ProjectConfig{HookDirs: []string{"queries"}}
	assert.True(t, isHookFile("queries/users.ts", cfg))
	assert.True(t, isHookFile("src/queries/users.ts", cfg))
	assert.False(t, isHookFile("hooks/users.ts", cfg), "custom dirs replace the defaults")
}

func TestIsDatabaseFile(t *testing.T) {
	assert.True(t, isDatabaseFile("lib/db/users.ts"))
	assert.True(t, isDatabaseFile("db/client.ts"))
	assert.True(t, isDatabaseFile("src/database/orders.ts"))
	assert.True(t, isDatabaseFile("prisma/seed.ts"))
	assert.False(t, isDatabaseFile("components/Table.tsx"))
}

func TestIsAPIRouteFile(t *testing.T) {
	assert.True(t, isAPIRouteFile("app/api/users/route.ts"))
	assert.True(t, isAPIRouteFile("app/api/users/route.js"))
	assert.True(t, isAPIRouteFile("pages/api/users.ts"))
	assert.False(t, isAPIRouteFile("app/api/users/helpers.tsx"))
	assert.False(t, isAPIRouteFile("app/users/route.ts"))
}

func TestIsPageFile(t *testing.T) {
	assert.True(t, isPageFile("app/admin/page.tsx"))
	assert.True(t, isPageFile("app/page.ts"))
	assert.False(t, isPageFile("app/admin/layout.tsx"))
}

func TestIsComponentFile(t *testing.T) {
	assert.True(t, isComponentFile("components/Table.tsx"))
	assert.True(t, isComponentFile("src/components/forms/Input.jsx"))
	assert.False(t, isComponentFile("components/helpers.ts"), "components are tsx/jsx only")
	assert.False(t, isComponentFile("app/admin/page.tsx"))
}

func TestIsProtectedPath(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.True(t, isProtectedPath("app/admin/page.tsx", cfg))
	assert.True(t, isProtectedPath("app/api/users/route.ts", cfg))
	assert.True(t, isProtectedPath("admin/page.tsx", cfg))
	assert.False(t, isProtectedPath("app/blog/page.tsx", cfg))

	custom := domain.ProjectConfig{ProtectedPaths: []string{"billing"}}
	assert.True(t, isProtectedPath("app/billing/page.tsx", custom))
	assert.False(t, isProtectedPath("app/admin/page.tsx", custom))
}

func TestLineOf(t *testing.T) {
	content := "line one\nline two\nneedle here\n"
	assert.Equal(t, 3, lineOf(content, "needle"))
	assert.Equal(t, 1, lineOf(content, "line one"))
	assert.Equal(t, 0, lineOf(content, "missing"))
}
