package analysis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_Flags(t *testing.T) {
	dir := t.TempDir()
	content := `import { useQuery, useMutation, useQueryClient } from "@tanstack/react-query";

export function useUsers() {
  const queryClient = useQueryClient();
  const { data, isLoading, isError } = useQuery({ queryKey: ["users"] });
  const { mutate } = useMutation({
    mutationFn: (input) => userSchema.parse(input),
    onSuccess: () => queryClient.invalidateQueries({ queryKey: ["users"] }),
  });
  return { users: data, isLoading, isError, mutate };
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "useUsers.ts"), []byte(content), 0644))

	files, records, err := New().Analyze(dir, []string{"useUsers.ts"})
	require.NoError(t, err)
	assert.Equal(t, content, files["useUsers.ts"])

	fa := records["useUsers.ts"]
	require.NotNil(t, fa)
	assert.True(t, fa.HasParse)
	assert.True(t, fa.HasLoadingState)
	assert.True(t, fa.HasErrorState)
	assert.True(t, fa.HasExport)
	assert.False(t, fa.HasAuth)
	assert.False(t, fa.HasTryCatch)
	assert.Equal(t, []string{"useMutation"}, fa.Mutations)
	assert.Equal(t, []string{"invalidateQueries"}, fa.Invalidates)
	assert.Equal(t, []string{"useUsers"}, fa.Functions)
}

func TestAnalyze_AuthAndTryCatch(t *testing.T) {
	dir := t.TempDir()
	content := `import { getServerSession } from "next-auth";

export async function GET() {
  const session = await getServerSession();
  try {
    return ok();
  } catch (err) {
    return fail();
  }
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "route.ts"), []byte(content), 0644))

	_, records, err := New().Analyze(dir, []string{"route.ts"})
	require.NoError(t, err)

	fa := records["route.ts"]
	require.NotNil(t, fa)
	assert.True(t, fa.HasAuth)
	assert.True(t, fa.HasTryCatch)
	assert.Equal(t, []string{"GET"}, fa.Functions)
}

func TestAnalyze_FunctionForms(t *testing.T) {
	dir := t.TempDir()
	content := `function plain() {}
export function exported() {}
export async function asyncExported() {}
const arrow = () => {};
export const asyncArrow = async () => {};
const notAFunction = 42;
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fns.ts"), []byte(content), 0644))

	_, records, err := New().Analyze(dir, []string{"fns.ts"})
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"plain", "exported", "asyncExported", "arrow", "asyncArrow"},
		records["fns.ts"].Functions)
}

func TestAnalyze_TotalLines(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.ts"), []byte("one\ntwo\nthree\n"), 0644))

	_, records, err := New().Analyze(dir, []string{"a.ts"})
	require.NoError(t, err)
	assert.Equal(t, 4, records["a.ts"].TotalLines, "trailing newline counts as a final empty line")
}

func TestAnalyze_SkipsUnreadableFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.ts"), []byte("export {};\n"), 0644))

	files, records, err := New().Analyze(dir, []string{"a.ts", "missing.ts"})
	require.NoError(t, err)
	assert.Len(t, files, 1)
	assert.Len(t, records, 1)
	assert.NotContains(t, records, "missing.ts")
}

func TestAnalyze_FormValidation(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Form.tsx"),
		[]byte("const form = useForm({ resolver: zodResolver(schema) });\n"), 0644))

	_, records, err := New().Analyze(dir, []string{"Form.tsx"})
	require.NoError(t, err)
	assert.True(t, records["Form.tsx"].HasFormValidation)
}
