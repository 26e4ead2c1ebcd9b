package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"d4-translate/internal/refdata"
	"d4-translate/internal/translate/model"
	"d4-translate/internal/translate/service"
)

const headerRow = `["Gear Slot", ["Aspects"], "Stat Priority"]`

func writeBuilds(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func testTranslator() *service.Translator {
	refs := &refdata.Store{
		Affixes: refdata.NewReferenceMap(map[string]string{
			"aff1": "Maximum Life",
			"aff2": "Critical Strike Chance",
		}),
		Aspects: refdata.NewReferenceMap(map[string]string{
			"asp1": "Edgemaster's Aspect",
		}),
	}
	return service.NewTranslator(refs, model.Defaults(), zerolog.Nop())
}

func TestRunTranslatesDirectory(t *testing.T) {
	buildsDir := writeBuilds(t, map[string]string{
		"bravo.json": `[` + headerRow + `,
			["Ring", ["Edgemaster's Aspect"], "1. Maximum Life\n2. Critical Strike Chance"]]`,
		"alpha.json": `[` + headerRow + `, ["Helm", [], "1. Maximum Life"]]`,
		"notes.txt":  "not a build",
	})
	outDir := filepath.Join(t.TempDir(), "out")

	r := New(testTranslator(), 4, false, zerolog.Nop())
	rep, err := r.Run(context.Background(), buildsDir, outDir)
	require.NoError(t, err)

	require.Len(t, rep.Outcomes, 2)
	assert.Equal(t, "alpha", rep.Outcomes[0].Build)
	assert.Equal(t, "bravo", rep.Outcomes[1].Build)
	assert.Empty(t, rep.Failures)

	for _, name := range []string{"alpha.json", "bravo.json"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}
}

func TestRunIsolatesFailedBuilds(t *testing.T) {
	buildsDir := writeBuilds(t, map[string]string{
		"good.json":   `[` + headerRow + `, ["Ring", [], "1. Maximum Life"]]`,
		"broken.json": `[` + headerRow + `, ["Ring", [], "1. Completely Unheard Of Attribute"]]`,
	})
	outDir := filepath.Join(t.TempDir(), "out")

	r := New(testTranslator(), 2, false, zerolog.Nop())
	rep, err := r.Run(context.Background(), buildsDir, outDir)
	require.NoError(t, err)

	require.Len(t, rep.Failures, 1)
	assert.Equal(t, "broken", rep.Failures[0].Build)
	assert.Contains(t, rep.Failures[0].Err, "no match")

	_, err = os.Stat(filepath.Join(outDir, "good.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "broken.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunStrictAborts(t *testing.T) {
	buildsDir := writeBuilds(t, map[string]string{
		"broken.json": `[` + headerRow + `, ["Ring", [], "1. Completely Unheard Of Attribute"]]`,
	})
	outDir := filepath.Join(t.TempDir(), "out")

	r := New(testTranslator(), 2, true, zerolog.Nop())
	_, err := r.Run(context.Background(), buildsDir, outDir)
	require.Error(t, err)

	var nm *service.NoMatchError
	assert.ErrorAs(t, err, &nm)
}

func TestRunClearsOutputDir(t *testing.T) {
	buildsDir := writeBuilds(t, map[string]string{
		"alpha.json": `[` + headerRow + `, ["Helm", [], "1. Maximum Life"]]`,
	})
	outDir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.MkdirAll(outDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "stale.json"), []byte("{}"), 0o644))

	r := New(testTranslator(), 1, false, zerolog.Nop())
	_, err := r.Run(context.Background(), buildsDir, outDir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(outDir, "stale.json"))
	assert.True(t, os.IsNotExist(err))
}
